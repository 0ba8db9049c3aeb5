package relay

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chronos-agency/timetravel-api/internal/catalog"
)

// policyPrompt fixes the assistant's identity, tone and hard constraints.
// The catalog text is rendered separately and appended, so content edits
// never touch this template.
const policyPrompt = `Tu es un agent de voyage temporel de la "TimeTravel Agency" (Chronos Agency).

Ton rôle: conseiller les clients sur les voyages dans le temps proposés par l'agence.

Ton ton: professionnel, chaleureux, passionné d'histoire, clair et concis. Tu vouvoies toujours le client.

Règles strictes:
- Tu ne parles QUE des destinations listées ci-dessous. Tu n'inventes JAMAIS d'autre destination.
- Les prix sont fictifs mais plausibles et cohérents avec les données ci-dessous.
- Si la destination est risquée (surtout le Crétacé), rappelle toujours au moins 1 règle de sécurité pertinente.
- Si tu n'as pas l'information exacte, dis-le honnêtement et propose une alternative ou une question de clarification.
- Ne promets jamais de faits impossibles. Reste dans l'univers de l'agence.
- Réponds en français.
- Sois concis: 2-4 paragraphes maximum.`

// SystemPrompt composes the fixed policy prompt with the rendered catalog.
func SystemPrompt(cat *catalog.Catalog) string {
	return policyPrompt + "\n\n" + RenderCatalog(cat)
}

// RenderCatalog renders every destination's descriptive content so the model
// can answer from facts instead of inventing them.
func RenderCatalog(cat *catalog.Catalog) string {
	var b strings.Builder
	b.WriteString("Destinations disponibles:\n")

	for i, d := range cat.All() {
		fmt.Fprintf(&b, "\n%d. **%s** (slug: %s)\n", i+1, d.Name, d.Slug)
		fmt.Fprintf(&b, "   - Période: %s, Lieu: %s\n", d.Period, d.Location)
		fmt.Fprintf(&b, "   - Pitch: %s\n", d.ShortPitch)
		fmt.Fprintf(&b, "   - Activités: %s\n", strings.Join(d.Activities, " ; "))
		fmt.Fprintf(&b, "   - Avertissements: %s\n", strings.Join(d.Warnings, " ; "))
		fmt.Fprintf(&b, "   - Prix: à partir de %s | Durées: %s\n", d.Price, strings.Join(d.DurationOptions, ", "))
	}

	return b.String()
}

// userContent appends the optional context annotations to the trimmed
// message. Annotations are hints only; the catalog constraint lives in the
// system prompt, so an unknown slug here cannot widen what the model may
// discuss.
func userContent(trimmed, destinationSlug string, quizResult json.RawMessage) string {
	var b strings.Builder
	b.WriteString(trimmed)

	if destinationSlug != "" {
		fmt.Fprintf(&b, "\n\n[Contexte: destination %q]", destinationSlug)
	}
	if len(quizResult) > 0 {
		fmt.Fprintf(&b, "\n\n[Quiz: %s]", string(quizResult))
	}

	return b.String()
}
