package validation

import (
	"reflect"

	"github.com/gin-gonic/gin/binding"
)

// ginValidator lets gin binding share the validator instance, so field names
// in binding errors follow the json tags.
type ginValidator struct{}

func (ginValidator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	return instance().Struct(obj)
}

func (ginValidator) Engine() any {
	return instance()
}

// RegisterWithGin replaces gin's default binding validator.
func RegisterWithGin() {
	binding.Validator = ginValidator{}
}
