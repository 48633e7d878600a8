// Package capability probes optional build features once at startup and
// reports their availability to the rest of the client. Features that
// depend on native modules (payment SDK, signature capture, date picker)
// may be absent in lightweight builds, and callers degrade gracefully
// instead of crashing mid-flow.
package capability

import (
	"admission-client/internal/common/config"
	apperrors "admission-client/internal/common/errors"
	"admission-client/internal/common/logger"
)

// Availability is the tri-state result of a capability probe.
type Availability int

const (
	// Unknown means the probe has not run yet.
	Unknown Availability = iota
	// Available means the feature can be used in this build.
	Available
	// Unavailable means the feature is missing and callers must degrade.
	Unavailable
)

func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	case Unavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Feature names a probeable optional capability.
type Feature string

const (
	FeaturePaymentSDK       Feature = "payment_sdk"
	FeatureSignatureCapture Feature = "signature_capture"
	FeatureNativeDatePicker Feature = "native_date_picker"
)

// Set holds the probed availability of every optional feature. Probing
// happens once in Probe; afterwards the set is read-only.
type Set struct {
	features map[Feature]Availability
}

// Probe evaluates each feature against the build configuration and logs
// anything that came back unavailable.
func Probe(cfg config.FeaturesConfig, log logger.Logger) *Set {
	s := &Set{features: map[Feature]Availability{
		FeaturePaymentSDK:       fromBool(cfg.PaymentSDK),
		FeatureSignatureCapture: fromBool(cfg.SignatureCapture),
		FeatureNativeDatePicker: fromBool(cfg.NativeDatePicker),
	}}
	for feature, availability := range s.features {
		if availability == Unavailable {
			log.Warn("Optional capability unavailable in this build", map[string]interface{}{
				"feature": string(feature),
			})
		}
	}
	return s
}

func fromBool(enabled bool) Availability {
	if enabled {
		return Available
	}
	return Unavailable
}

// Check returns the probed availability of a feature. Features never
// probed report Unknown.
func (s *Set) Check(feature Feature) Availability {
	if s == nil {
		return Unknown
	}
	availability, ok := s.features[feature]
	if !ok {
		return Unknown
	}
	return availability
}

// Has reports whether a feature is definitely usable.
func (s *Set) Has(feature Feature) bool {
	return s.Check(feature) == Available
}

// Require returns a feature-unavailable error when the feature cannot be
// used, nil when it can. Callers surface the error instead of crashing into
// a missing native module.
func (s *Set) Require(feature Feature) error {
	if s.Has(feature) {
		return nil
	}
	switch feature {
	case FeaturePaymentSDK:
		return apperrors.NewFeatureUnavailableError(apperrors.ErrCodePaymentSDKMissing, "Payment")
	case FeatureSignatureCapture:
		return apperrors.NewFeatureUnavailableError(apperrors.ErrCodeSignatureModuleMissing, "Signature capture")
	default:
		return apperrors.NewFeatureUnavailableError(apperrors.ErrCodeInternal, string(feature))
	}
}
