package articleflow

import "errors"

// Engine errors.
var (
	// ErrStepNotFound indicates an unknown step number.
	ErrStepNotFound = errors.New("step not found")

	// ErrStepNotGenerable indicates the step has no token budget and never
	// invokes the text-generation provider.
	ErrStepNotGenerable = errors.New("step is not generable")

	// ErrDependenciesNotValidated indicates a step cannot be validated
	// because one of its declared dependencies is not validated yet.
	ErrDependenciesNotValidated = errors.New("step dependencies not validated")

	// ErrSelectionRequired indicates a choose or choose-dual step was
	// validated without the required selection indices.
	ErrSelectionRequired = errors.New("selection required")

	// ErrSelectionOutOfRange indicates a selection index does not point
	// into the parsed candidate list.
	ErrSelectionOutOfRange = errors.New("selection index out of range")

	// ErrEmptyContent indicates an edit step was validated with no text.
	ErrEmptyContent = errors.New("step content is empty")

	// ErrImagesIncomplete indicates the imagery step was validated while
	// some images are not done yet.
	ErrImagesIncomplete = errors.New("image generation incomplete")

	// ErrNoImagePrompts indicates the image-prompt step output contains no
	// parseable filename/prompt pairs.
	ErrNoImagePrompts = errors.New("no image prompts found")
)

// IsConflict reports whether err is one of the pre-mutation validation
// conflicts: the caller must complete or fix something before retrying.
func IsConflict(err error) bool {
	return errors.Is(err, ErrDependenciesNotValidated) ||
		errors.Is(err, ErrSelectionRequired) ||
		errors.Is(err, ErrSelectionOutOfRange) ||
		errors.Is(err, ErrEmptyContent) ||
		errors.Is(err, ErrImagesIncomplete)
}
