// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package recommend

import (
	"strings"

	"github.com/tomtom215/ludomood/internal/mood"
)

// User-facing messages. The product speaks French.
const (
	msgLowConfidence = "⚠️ Analyse basée sur peu d'éléments. N'hésitez pas à être plus précis sur votre humeur !"
	msgNoMatch       = "😕 Aucun jeu ne correspond parfaitement à vos critères. Essayez de reformuler ou d'être moins spécifique."
	msgLowEnergy     = "😴 Vous semblez rechercher des jeux relaxants et peu énergivores."
	msgHighEnergy    = "⚡ Vous avez l'air d'être en forme pour des jeux dynamiques !"
	msgHighSocial    = "👥 Parfait pour créer de l'interaction et des discussions."
	msgLowSocial     = "🤔 Des jeux qui laissent de l'espace pour réfléchir tranquillement."
	msgShortGames    = "⏰ Sélection de jeux courts adaptés à votre contrainte de temps."
	msgLongGames     = "⏳ Des jeux qui vous occuperont pour une longue session !"
	msgTagsPrefix    = "🎯 Correspondance trouvée pour : "
	msgExcellent     = "🎯 Excellente correspondance ! Ces jeux devraient parfaitement vous convenir."
	msgGood          = "👍 Bonne correspondance générale avec quelques compromis."
	msgPartial       = "💡 Correspondance partielle. Ces jeux pourraient vous surprendre !"

	suggestBeSpecific = "Essayez d'être plus spécifique sur l'ambiance recherchée (ex: 'détendu', 'stratégique', 'amusant')"
	suggestBroaden    = "Aucun jeu ne correspond parfaitement. Essayez des termes plus généraux ou différents."
	suggestSimpler    = "Certains jeux recommandés sont complexes. Ajoutez 'simple' ou 'accessible' pour des jeux plus faciles."
)

const (
	shownTags           = 3
	excellentMatch      = 70.0
	goodMatch           = 50.0
	simpleProfileCutoff = 2.0
)

// globalExplanations summarizes the profile and the shortlist for display.
func globalExplanations(p *mood.Profile, recs []ScoredGame, lowConfidence int) []string {
	out := []string{}

	if p.Confidence < lowConfidence {
		out = append(out, msgLowConfidence)
	}
	if len(recs) == 0 {
		return append(out, msgNoMatch)
	}

	switch {
	case p.Energy <= 2:
		out = append(out, msgLowEnergy)
	case p.Energy >= 4:
		out = append(out, msgHighEnergy)
	}

	switch {
	case p.Social >= 4:
		out = append(out, msgHighSocial)
	case p.Social <= 2:
		out = append(out, msgLowSocial)
	}

	switch {
	case p.MaxDuration <= 30:
		out = append(out, msgShortGames)
	case p.MinDuration >= 90:
		out = append(out, msgLongGames)
	}

	if len(p.DetectedTags) > 0 {
		tags := p.DetectedTags
		if len(tags) > shownTags {
			tags = tags[:shownTags]
		}
		out = append(out, msgTagsPrefix+strings.Join(tags, ", "))
	}

	var sum float64
	for _, r := range recs {
		sum += float64(r.Result.Percent)
	}
	switch avg := sum / float64(len(recs)); {
	case avg >= excellentMatch:
		out = append(out, msgExcellent)
	case avg >= goodMatch:
		out = append(out, msgGood)
	default:
		out = append(out, msgPartial)
	}
	return out
}

// Suggestions returns hints for refining a mood description.
func Suggestions(p *mood.Profile, recs []ScoredGame) []string {
	out := []string{}
	if len(p.DetectedMoods) == 0 {
		out = append(out, suggestBeSpecific)
	}
	if len(recs) == 0 {
		out = append(out, suggestBroaden)
	}
	if p.Complexity <= simpleProfileCutoff {
		for _, r := range recs {
			if BandOf(r.Game.Complexity) == BandComplex {
				out = append(out, suggestSimpler)
				break
			}
		}
	}
	return out
}
