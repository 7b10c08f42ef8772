// Package notify renders assessment notifications and hands them to a
// delivery backend.
package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/okian/giftmatch/internal/domain/model"
)

// maxGiftScore is the highest total a gift can reach: four answers of 4.
const maxGiftScore = 16

// Notifier delivers a notification.
type Notifier interface {
	Notify(ctx context.Context, n model.Notification) error
}

// Message is a rendered notification.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// ParseRecipients splits a comma-separated address list, dropping blanks.
func ParseRecipients(list string) []string {
	var out []string
	for _, addr := range strings.Split(list, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// Build creates the notification for a stored assessment. baseURL has no
// trailing slash requirement.
func Build(a model.Assessment, baseURL string) model.Notification {
	base := strings.TrimRight(baseURL, "/")
	return model.Notification{
		AssessmentID:  a.ID,
		FirstName:     a.FirstName,
		LastName:      a.LastName,
		Email:         a.Email,
		TopGifts:      a.Result.TopGifts,
		TeamInterests: a.TeamInterests,
		ResultsURL:    base + "/results/" + a.ID,
		AdminURL:      base + "/admin/" + a.ID,
	}
}

// Render formats n as a plain-text message for to.
func Render(to []string, n model.Notification) Message {
	var gifts []string
	for i, g := range n.TopGifts {
		gifts = append(gifts, fmt.Sprintf("%d. %s (%d/%d)", i+1, g.Gift, g.Score, maxGiftScore))
	}

	teams := "None selected"
	if len(n.TeamInterests) > 0 {
		teams = strings.Join(n.TeamInterests, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s just completed the assessment.\n\n", n.FirstName, n.LastName)
	fmt.Fprintf(&b, "Email: %s\n\n", n.Email)
	fmt.Fprintf(&b, "Top Gifts:\n%s\n\n", strings.Join(gifts, "\n"))
	fmt.Fprintf(&b, "Teams Interested In: %s\n\n", teams)
	fmt.Fprintf(&b, "View Results: %s\n", n.ResultsURL)
	fmt.Fprintf(&b, "Admin View: %s\n", n.AdminURL)

	return Message{
		To:      to,
		Subject: fmt.Sprintf("New Assessment: %s %s", n.FirstName, n.LastName),
		Body:    b.String(),
	}
}
