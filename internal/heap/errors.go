package heap

import "github.com/scigolib/dart/internal/utils"

func typeMismatch(context string) error {
	return utils.New(utils.TypeMismatch, context)
}

func outOfRange(context string) error {
	return utils.New(utils.OutOfRange, context)
}
