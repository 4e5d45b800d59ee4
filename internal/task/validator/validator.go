package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"taskboard-api/internal/task"
	"taskboard-api/pkg/datemath"
)

type rule struct {
	field    string
	tag      string
	required bool
}

var commonRules = []rule{
	{field: task.FieldID, tag: "gt=0"},
	{field: task.FieldProjectID, tag: "gt=0"},
	{field: task.FieldColumnID, tag: "gte=0"},
	{field: task.FieldOwnerID, tag: "gte=0"},
	{field: task.FieldCreatorID, tag: "gte=0"},
	{field: task.FieldCategoryID, tag: "gte=0"},
	{field: task.FieldSwimlaneID, tag: "gte=0"},
	{field: task.FieldTitle, tag: "max=65535"},
	{field: task.FieldColorID, tag: "max=50"},
	{field: task.FieldReference, tag: "max=255"},
	{field: task.FieldDateDue, tag: "omitempty,taskdate"},
	{field: task.FieldRecurrenceStatus, tag: "oneof=0 1 2"},
	{field: task.FieldRecurrenceTrigger, tag: "oneof=0 1 2"},
	{field: task.FieldRecurrenceFactor, tag: "gte=0"},
	{field: task.FieldRecurrenceTimeframe, tag: "oneof=0 1 2"},
	{field: task.FieldRecurrenceBasedate, tag: "oneof=0 1"},
}

var creationRules = append([]rule{
	{field: task.FieldProjectID, tag: "required", required: true},
	{field: task.FieldTitle, tag: "required", required: true},
}, commonRules...)

var modificationRules = append([]rule{
	{field: task.FieldID, tag: "required", required: true},
	{field: task.FieldTitle, tag: "required"},
}, commonRules...)

type implValidator struct {
	v     *validator.Validate
	dates *datemath.Parser
}

var _ task.Validator = (*implValidator)(nil)

// New creates the task field validator. Due dates are checked with dates.
func New(dates *datemath.Parser) *implValidator {
	if dates == nil {
		panic("task/validator: date parser is required")
	}
	iv := &implValidator{v: validator.New(), dates: dates}
	if err := iv.v.RegisterValidation("taskdate", iv.isTaskDate); err != nil {
		panic(fmt.Sprintf("task/validator: register taskdate: %v", err))
	}
	return iv
}

// ValidateCreation checks a full creation mapping.
func (iv *implValidator) ValidateCreation(f *task.Fields) (bool, map[string][]string) {
	return iv.run(f, creationRules)
}

// ValidateAPIModification checks a partial update mapping. Only id is
// required; supplied fields must still be well formed.
func (iv *implValidator) ValidateAPIModification(f *task.Fields) (bool, map[string][]string) {
	return iv.run(f, modificationRules)
}

func (iv *implValidator) run(f *task.Fields, rules []rule) (bool, map[string][]string) {
	errs := make(map[string][]string)
	failed := make(map[string]bool)

	for _, r := range rules {
		if failed[r.field] {
			continue
		}
		val, ok := f.Get(r.field)
		if !ok {
			if r.required {
				errs[r.field] = append(errs[r.field], "The "+label(r.field)+" is required")
				failed[r.field] = true
			}
			continue
		}

		if err := iv.v.Var(val, r.tag); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				for _, fe := range verrs {
					errs[r.field] = append(errs[r.field], message(r.field, fe))
				}
			} else {
				errs[r.field] = append(errs[r.field], err.Error())
			}
			failed[r.field] = true
		}
	}

	return len(errs) == 0, errs
}

func (iv *implValidator) isTaskDate(fl validator.FieldLevel) bool {
	return iv.dates.Valid(fl.Field().String())
}
