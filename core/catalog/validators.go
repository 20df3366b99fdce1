package catalog

import (
	"github.com/go-playground/validator/v10"

	"github.com/dineshpandey3618-web/Rank1/core"
)

var (
	classLabelTag  = "classlabel"
	classLabelText = "must be one of Class 6 .. Class 12"
)

func init() {
	_ = core.Validate.RegisterValidation(classLabelTag, classLabelValidation)
	core.RegisterCustomTranslation(classLabelTag, classLabelText)
}

// classLabelValidation checks that the value is one of the fixed class labels.
// Exact match, no case-folding.
func classLabelValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, label := range ClassLabels {
		if val == label {
			return true
		}
	}
	return false
}
