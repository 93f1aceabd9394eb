package models

// FHIRVersion is the FHIR release the field tables follow.
const FHIRVersion = "4.0.1"

var version = "0.1.0"

// Version returns the module version.
func Version() string {
	return version
}
