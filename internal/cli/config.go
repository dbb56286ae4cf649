package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	Session     string
	SessionFile string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("YZSCORE_SERVER", "http://localhost:8080"),
		Session:     os.Getenv("YZSCORE_SESSION"),
		SessionFile: getEnvOrDefault("YZSCORE_SESSION_FILE", defaultSessionFile()),
		Output:      "text",
		Verbose:     false,
	}
}

// LoadSession loads the current session code from file if not already set
func (c *Config) LoadSession() error {
	if c.Session != "" {
		return nil
	}

	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No session file is fine
		}
		return err
	}

	c.Session = strings.TrimSpace(string(data))
	return nil
}

// SaveSession remembers code as the current session
func (c *Config) SaveSession(code string) error {
	c.Session = code

	dir := filepath.Dir(c.SessionFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.SessionFile, []byte(code), 0600)
}

// RequireSession returns the current session code or an error telling the user how to set one
func (c *Config) RequireSession() (string, error) {
	if c.Session == "" {
		return "", fmt.Errorf("no session selected: run 'session create', pass --session, or set YZSCORE_SESSION")
	}
	return c.Session, nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".yzscore/session"
	}
	return filepath.Join(home, ".yzscore", "session")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
