package web

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/Zachkp/cyber-portfolio/internal/contact"
)

type contactRequest struct {
	Name    string `form:"name" json:"name" binding:"required,max=200"`
	Email   string `form:"email" json:"email" binding:"required,email,max=320"`
	Message string `form:"message" json:"message" binding:"required,max=5000"`
}

// formView is the data of the contact form fragment. The fragment replaces
// itself on submit, so a notice never outlives the next response.
type formView struct {
	Form    contact.Snapshot
	Error   string
	Success string
}

func (s *Server) handleContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form.html", formView{Form: contact.NewForm(nil).Snapshot()})
}

// handleContact runs one submission of the contact form. The form lives as
// long as the request: if the client goes away mid-send the submission is
// cancelled.
func (s *Server) handleContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "contact-form.html", formView{
			Error: "Please enter your name, a valid email address and a message.",
			Form: contact.Snapshot{
				Message: contact.Message{Name: req.Name, Email: req.Email, Message: req.Message},
				Status:  contact.Failed,
				Err:     err,
			},
		})
		return
	}

	form := contact.NewForm(s.sender)
	defer form.Close()

	fields := map[contact.Field]string{
		contact.Name:  req.Name,
		contact.Email: req.Email,
		contact.Body:  req.Message,
	}
	for field, value := range fields {
		if err := form.UpdateField(field, value); err != nil {
			log.Printf("Error updating contact field: %v", err)
		}
	}

	err := form.Submit(c.Request.Context()).Wait()
	if errors.Is(err, context.Canceled) {
		log.Printf("Contact submission from %s abandoned", req.Email)
		return
	}
	if err != nil {
		log.Printf("Error sending contact message: %v", err)
		c.HTML(http.StatusOK, "contact-form.html", formView{
			Error: "Sorry, there was an error sending your message. Please try again later.",
			Form:  form.Snapshot(),
		})
		return
	}

	c.HTML(http.StatusOK, "contact-form.html", formView{
		Success: "Thank you for your message! I'll get back to you soon.",
		Form:    form.Snapshot(),
	})
}
