package domain

import (
	"time"
)

// ContactStatusNew marks a freshly submitted contact message.
const ContactStatusNew = "new"

// ContactMessage is a contact form submission.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
