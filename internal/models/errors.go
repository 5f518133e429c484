package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// Authorization errors
	ErrNotBillCreator = errors.New("only the creator of a bill can change or settle it")

	// Validation errors
	ErrBillTitleMissing      = errors.New("the bill title must be set")
	ErrBillAmountNotPositive = errors.New("the bill amount must be positive")
	ErrBillPayeeMissing      = errors.New("the bill payee must be set")
	ErrBillNoPayers          = errors.New("a bill must have at least one payer")
	ErrNoSuchPayer           = errors.New("this member does not owe a share of this bill")

	ErrMemberUsernameMissing   = errors.New("the member username must be set")
	ErrMemberUsernameNotUnique = errors.New("the member username is already in use")
)
