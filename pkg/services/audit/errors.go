package audit

import "fmt"

// InvalidDefinitionError reports a package definition that fails structural
// validation. Missing catalog data is not a validation failure; it surfaces
// as an unresolved component cost instead.
type InvalidDefinitionError struct {
	PackageID string
	Reason    string
}

func (e *InvalidDefinitionError) Error() string {
	return fmt.Sprintf("invalid package definition %q: %s", e.PackageID, e.Reason)
}
