package notification

import "proofparcel/internal/pkg/errs"

type Category string

const (
	Info    Category = "info"
	Success Category = "success"
)

func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case Info, Success:
		return c, nil
	default:
		return "", errs.NewValueIsInvalidError("notification category " + s)
	}
}

func (c Category) String() string {
	return string(c)
}
