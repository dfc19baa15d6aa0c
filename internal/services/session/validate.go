package session

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"insightagent/internal/domain"
)

var validate = validator.New()

// ValidateConfiguration checks cfg and returns its normalised form.
//
// Fields are checked in a fixed order (environment, sessionIdentifier,
// apiKey, apiSecret) and the first failure is returned as a
// *domain.ConfigurationError. Environment is upper-cased and the session
// identifier trimmed. apiKey and apiSecret are returned untouched since they
// feed key derivation, but whitespace-only values count as missing.
func ValidateConfiguration(cfg domain.Configuration) (domain.Configuration, error) {
	out := cfg
	out.Environment = domain.ParseEnvironment(string(cfg.Environment))
	out.SessionIdentifier = domain.SessionIdentifier(strings.TrimSpace(string(cfg.SessionIdentifier)))

	checks := []struct {
		field string
		value string
		rules string
	}{
		{"environment", string(out.Environment), "required,oneof=PROD STAGE"},
		{"sessionIdentifier", string(out.SessionIdentifier), "required"},
		{"apiKey", strings.TrimSpace(out.APIKey), "required"},
		{"apiSecret", strings.TrimSpace(out.APISecret), "required"},
	}
	for _, c := range checks {
		if err := validate.Var(c.value, c.rules); err != nil {
			return domain.Configuration{}, configurationError(c.field, err)
		}
	}
	return out, nil
}

func configurationError(field string, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() != "required" {
		return &domain.ConfigurationError{
			Field:  field,
			Reason: "must be one of " + domain.EnvironmentProd.String() + ", " + domain.EnvironmentStage.String(),
		}
	}
	return &domain.ConfigurationError{Field: field}
}
