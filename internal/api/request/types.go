package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse
var validate = validator.New()

// AddPlayerRequest is the request body for adding a player.
// Blank names are a domain error (EMPTY_NAME), so only presence is checked here.
type AddPlayerRequest struct {
	Name *string `json:"name" validate:"required"`
}

// SetScoreRequest is the request body for setting a score.
// Value is the raw input string and is parsed leniently by the scorecard.
type SetScoreRequest struct {
	Value *string `json:"value" validate:"required"`
}

// Decode reads a JSON body into v and validates its shape
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.New("invalid request body")
	}
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, strings.ToLower(fe.Field()))
			}
			return fmt.Errorf("%s is required", strings.Join(fields, ", "))
		}
		return err
	}
	return nil
}
