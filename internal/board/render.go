package board

import (
	"activityBoard/internal/models"
	"strconv"
	"strings"
)

const (
	selectPlaceholder = `<option value="" disabled selected>Selecciona una actividad</option>`
	loadFailedHTML    = `<p>Failed to load activities. Please try again later.</p>`
	noParticipants    = `<p class="no-participants">Aún no hay participantes.</p>`
)

func renderCard(a models.Activity) string {
	var b strings.Builder

	b.WriteString(`<div class="activity-card">`)
	b.WriteString(`<h4>` + Escape(a.Name) + `</h4>`)
	b.WriteString(`<p>` + Escape(a.Description) + `</p>`)
	b.WriteString(`<p><strong>Schedule:</strong> ` + Escape(a.Schedule) + `</p>`)
	b.WriteString(`<p><strong>Availability:</strong> ` + strconv.Itoa(a.SpotsLeft()) + ` spots left</p>`)
	b.WriteString(`<section class="participants-section">`)
	b.WriteString(`<h5>Participantes (` + strconv.Itoa(len(a.Participants)) + `)</h5>`)
	b.WriteString(renderParticipants(a.Participants))
	b.WriteString(`</section>`)
	b.WriteString(`</div>`)

	return b.String()
}

func renderParticipants(emails []string) string {
	if len(emails) == 0 {
		return noParticipants
	}

	var b strings.Builder

	b.WriteString(`<ul class="participants-list">`)
	for _, email := range emails {
		b.WriteString(`<li>` + Escape(email) + `</li>`)
	}
	b.WriteString(`</ul>`)

	return b.String()
}
