package commands

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrRegisterTrackCodeCommandIsNotConstructed = errors.New(
	"RegisterTrackCodeCommand must be created via NewRegisterTrackCodeCommand constructor",
)

// RegisterTrackCodeCommand is a customer adding one of their parcels.
//
// Example:
//
//	cmd, err := NewRegisterTrackCodeCommand(customerID, "YT2412345678901", "winter boots")
//	if err != nil {
//	    return fmt.Errorf("invalid track code: %w", err)
//	}
//	id, err := handler.Handle(ctx, cmd)
type RegisterTrackCodeCommand struct { //nolint:recvcheck //using for validation
	ownerID     kernel.UUID
	code        string
	description string

	guard guard.ConstructorGuard
}

// NewRegisterTrackCodeCommand validates the owner and trims the code and description.
func NewRegisterTrackCodeCommand(ownerID kernel.UUID, code, description string) (RegisterTrackCodeCommand, error) {
	cmd := RegisterTrackCodeCommand{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setCode(code),
	); err != nil {
		return RegisterTrackCodeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterTrackCodeCommandIsNotConstructed otherwise.
func (c RegisterTrackCodeCommand) Validate() error {
	return c.guard.Validate(ErrRegisterTrackCodeCommandIsNotConstructed)
}

// OwnerID returns the customer registering the parcel.
func (c RegisterTrackCodeCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Code returns the trimmed tracking number.
func (c RegisterTrackCodeCommand) Code() string {
	return c.code
}

// Description returns the optional customer note.
func (c RegisterTrackCodeCommand) Description() string {
	return c.description
}

func (c *RegisterTrackCodeCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	c.ownerID = ownerID
	return nil
}

func (c *RegisterTrackCodeCommand) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	c.code = code
	return nil
}
