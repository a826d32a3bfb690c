// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

/*
Package mood converts a free-text mood description into a Profile.

Extraction runs in a fixed order over the normalized (lowercased, optionally
accent-folded) text:

 1. complex expressions from the lexicon, each counting as two matches
 2. keyword rules, each counting one match per distinct trigger found
 3. context detectors: explicit or qualitative player count (first match
    wins), duration bounds, then negation ceilings
 4. confidence: 12 per match, 20 per expression, coherence bonuses,
    clamped to [45, 100]
 5. normalization: attributes to [1,5], players to [1,10], durations to
    [5,300] with min <= max, deduplicated provenance lists

Every adjustment is blended as old*0.6 + target*0.4, so one keyword moves a
value only part of the way while several agreeing keywords converge on it.

Extract is deterministic and never fails. An Extractor is immutable after
construction and can serve concurrent requests.
*/
package mood
