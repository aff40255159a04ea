package commands

import (
	"errors"
	"fmt"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/trackcode"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrUpdateTrackCodesCommandIsNotConstructed = errors.New(
	"UpdateTrackCodesCommand must be created via NewUpdateTrackCodesCommand constructor",
)

// TrackCodeUpdate is one scanned line: a code and, optionally, its weight.
type TrackCodeUpdate struct {
	Code   string
	Weight *kernel.Weight
}

// UpdateTrackCodesCommand is an operator batch update from a scanner or a
// pasted list. Every line is "CODE" or "CODE WEIGHT".
//
// status may be trackcode.Unknown to only record weights. correction selects
// the authorized correction path, which may also reopen claimed codes.
type UpdateTrackCodesCommand struct { //nolint:recvcheck //using for validation
	updates    []TrackCodeUpdate
	status     trackcode.Status
	correction bool
	notify     bool

	guard guard.ConstructorGuard
}

// NewUpdateTrackCodesCommand parses operator input into per-code updates.
//
// Parameters:
//   - raw: one code per line, optionally followed by a weight in kilograms
//   - status: target status; the empty status means weights only
//   - correction: allow moving a code backwards
//   - notify: send customer notifications for changed codes
//
// Returns a ValueIsRequired error when neither a status nor any weight is
// given, and a ValueIsInvalid error naming every malformed line.
func NewUpdateTrackCodesCommand(raw string, status trackcode.Status, correction, notify bool) (UpdateTrackCodesCommand, error) {
	cmd := UpdateTrackCodesCommand{
		status:     status,
		correction: correction,
		notify:     notify,
		guard:      guard.NewConstructorGuard(),
	}

	if err := cmd.setUpdates(raw); err != nil {
		return UpdateTrackCodesCommand{}, err
	}

	if status != trackcode.Unknown {
		if err := status.Validate(); err != nil {
			return UpdateTrackCodesCommand{}, err
		}
	} else if !cmd.hasWeights() {
		return UpdateTrackCodesCommand{}, errs.NewValueIsRequiredError("status or weight")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTrackCodesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTrackCodesCommandIsNotConstructed)
}

// Updates returns the parsed lines in input order.
func (c UpdateTrackCodesCommand) Updates() []TrackCodeUpdate {
	return c.updates
}

// Status returns the target status, empty for weight-only updates.
func (c UpdateTrackCodesCommand) Status() trackcode.Status {
	return c.status
}

// IsCorrection reports whether backward moves are allowed.
func (c UpdateTrackCodesCommand) IsCorrection() bool {
	return c.correction
}

// Notify reports whether customers are told about the change.
func (c UpdateTrackCodesCommand) Notify() bool {
	return c.notify
}

func (c *UpdateTrackCodesCommand) setUpdates(raw string) error {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("track codes")
	}

	var lineErrs []error
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		update := TrackCodeUpdate{Code: fields[0]}

		switch len(fields) {
		case 1:
		case 2:
			w, err := kernel.WeightFromString(strings.ReplaceAll(fields[1], ",", "."))
			if err != nil {
				lineErrs = append(lineErrs, fmt.Errorf("line %q: %w", line, err))
				continue
			}
			update.Weight = &w
		default:
			lineErrs = append(lineErrs, errs.NewValueIsInvalidErrorWithCause(
				"track code line", fmt.Errorf("%q must be CODE or CODE WEIGHT", line),
			))
			continue
		}

		if _, ok := seen[update.Code]; ok {
			continue
		}
		seen[update.Code] = struct{}{}
		c.updates = append(c.updates, update)
	}

	return errors.Join(lineErrs...)
}

func (c UpdateTrackCodesCommand) hasWeights() bool {
	for _, u := range c.updates {
		if u.Weight != nil {
			return true
		}
	}
	return false
}
