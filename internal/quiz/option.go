package quiz

import (
	"errors"
	"fmt"
)

type Option string

const (
	OptionA Option = "A"
	OptionB Option = "B"
	OptionC Option = "C"
	OptionD Option = "D"
)

var AllOptions = []Option{OptionA, OptionB, OptionC, OptionD}

var ErrInvalidOption = errors.New("answer must be one of A, B, C, D")

// ParseOption accepts exactly "A", "B", "C" or "D".
func ParseOption(s string) (Option, error) {
	for _, o := range AllOptions {
		if s == string(o) {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: got %q", ErrInvalidOption, s)
}

func (o Option) IsValid() bool {
	_, err := ParseOption(string(o))
	return err == nil
}
