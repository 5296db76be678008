// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrInvalidConfig is returned when a loaded setting is out of range.
	ErrInvalidConfig = errors.New("config: invalid setting")

	// ErrUnknownExtension is returned for a variations file that is neither
	// YAML nor HCL.
	ErrUnknownExtension = errors.New("config: unknown variations file extension")

	// ErrNoVariations is returned when a variations file declares none.
	ErrNoVariations = errors.New("config: no variations declared")

	// ErrDuplicateVariation is returned when two variations share a name.
	ErrDuplicateVariation = errors.New("config: duplicate variation name")

	// ErrInvalidVariation is returned when a variation cannot be resolved into
	// render policies.
	ErrInvalidVariation = errors.New("config: invalid variation")
)
