package service

// Validator checks tagged structs, reporting the first failure as a *ValidationError of
// the domain errors package.
type Validator interface {
	Validate(i any) error
}
