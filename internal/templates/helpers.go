package templates

import (
	"strconv"

	"github.com/csg33k/employee-register/internal/domain"
)

// itoa converts an int64 to a string, used for building URL paths in templ.
func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

// field describes one input of the entry form.
type field struct {
	name, label, kind string
	value             func(domain.Employee) string
	required          bool
	minLen            int
	full              bool
}

var formFields = []field{
	{name: "name", label: "Name *", kind: "text", value: func(e domain.Employee) string { return e.Name }, required: true, full: true},
	{name: "emailId", label: "Email", kind: "email", value: func(e domain.Employee) string { return e.EmailID }},
	{name: "contactNo", label: "Contact No", kind: "tel", value: func(e domain.Employee) string { return e.ContactNo }},
	{name: "city", label: "City", kind: "text", value: func(e domain.Employee) string { return e.City }},
	{name: "state", label: "State", kind: "text", value: func(e domain.Employee) string { return e.State }},
	{name: "address", label: "Address", kind: "text", value: func(e domain.Employee) string { return e.Address }, full: true},
	{name: "pinCode", label: "Pin Code *", kind: "text", value: func(e domain.Employee) string { return e.PinCode }, required: true, minLen: domain.MinPinCodeLen},
}
