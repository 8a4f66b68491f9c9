package cart

import (
	"fmt"
	"strconv"

	pkgerrors "github.com/dolapay/embed-sdk/pkg/errors"
)

// RequireField returns value unchanged when present and fails with a
// validation error carrying errMsg when it is absent.
func RequireField(value, errMsg string) (string, error) {
	if value == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, errMsg)
	}
	return value, nil
}

func parseIntField(raw, key string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeParse, err, fmt.Sprintf("parsing %s", key))
	}
	return n, nil
}
