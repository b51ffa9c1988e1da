package domain

// Inquiry is a contact request submitted by a visitor through the landing page.
// It is never persisted and only lives for the duration of one request.
type Inquiry struct {
	// Name is how the visitor introduced themselves.
	Name string `json:"name"`
	// Email is the address the visitor wants to be contacted at. Its shape is not validated.
	Email string `json:"email"`
	// Message is the free-form text of the inquiry.
	Message string `json:"message"`
}

// MissingFields returns the JSON names of all empty fields in declaration order.
func (i Inquiry) MissingFields() []string {
	var missing []string
	if i.Name == "" {
		missing = append(missing, "name")
	}
	if i.Email == "" {
		missing = append(missing, "email")
	}
	if i.Message == "" {
		missing = append(missing, "message")
	}

	return missing
}
