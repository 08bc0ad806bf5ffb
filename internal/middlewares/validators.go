package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"admin/internal/helpers"

	"github.com/go-playground/validator/v10"
)

type BodyKey struct{}
type QueryKey struct{}

var validate = validator.New()

// ValidateBody decodes and validates a JSON request body into T, storing the
// value in the request context for the handler layer.
func ValidateBody[T any](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body T
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			helpers.RespondWithError(w, http.StatusBadRequest, []string{"INVALID_BODY"})
			return
		}
		if err := validate.Struct(body); err != nil {
			helpers.RespondWithError(w, http.StatusBadRequest, []string{"VALIDATION_FAILED", err.Error()})
			return
		}

		ctx := context.WithValue(r.Context(), BodyKey{}, body)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ValidateQuery maps URL query parameters onto T by json tag and validates the
// result. Numeric and boolean parameters are coerced before unmarshalling.
func ValidateQuery[T any](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var query T
		if err := decodeQuery(r.URL.Query(), &query); err != nil {
			helpers.RespondWithError(w, http.StatusBadRequest, []string{"INVALID_QUERY"})
			return
		}
		if err := validate.Struct(query); err != nil {
			helpers.RespondWithError(w, http.StatusBadRequest, []string{"VALIDATION_FAILED", err.Error()})
			return
		}

		ctx := context.WithValue(r.Context(), QueryKey{}, query)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func decodeQuery(values url.Values, out any) error {
	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}
		if err := setField(out, key, coerce(vals[0])); err != nil {
			// A numeric-looking value may belong to a string field; retry raw.
			if err = setField(out, key, vals[0]); err != nil {
				return err
			}
		}
	}
	return nil
}

func setField(out any, key string, value any) error {
	encoded, err := json.Marshal(map[string]any{key: value})
	if err != nil {
		return err
	}
	return json.Unmarshal(encoded, out)
}

// coerce keeps query values usable for both string and numeric struct fields.
func coerce(v string) any {
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return v
}

func GetBody[T any](r *http.Request) (T, bool) {
	value, ok := r.Context().Value(BodyKey{}).(T)
	return value, ok
}

func GetQuery[T any](r *http.Request) (T, bool) {
	value, ok := r.Context().Value(QueryKey{}).(T)
	return value, ok
}
