/*
Package synth turns the deduplicated item set into the weekly Digest. The
generative path is contract-bound: structured output only, one retry after a
fixed cooldown, and unconditional provenance verification of every emitted
source URL against the trusted input set. When the generative path is
unavailable or exhausted, a deterministic fallback digest is built instead,
so synthesis always yields a usable artifact.
*/
package synth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SDV244/AI-Cyber-Sec-News-Generator/internal/types"
)

// attempt bounds the retry policy at the type level: exactly one retry.
type attempt int

const (
	firstAttempt attempt = iota
	retried
)

const defaultCooldown = 30 * time.Second

// Engine runs synthesis over a collected item set.
type Engine struct {
	gen      Generator
	log      *slog.Logger
	loc      *time.Location
	cooldown time.Duration
}

// New builds an engine. A nil Generator means no service credential is
// configured; synthesis then routes directly to the fallback digest.
func New(gen Generator, log *slog.Logger, loc *time.Location) *Engine {
	return &Engine{
		gen:      gen,
		log:      log,
		loc:      loc,
		cooldown: defaultCooldown,
	}
}

// Synthesize produces a Digest from items. It never returns an error: any
// failure of the generative path degrades to the deterministic fallback.
func (e *Engine) Synthesize(ctx context.Context, items []types.NewsItem) types.Digest {
	valid := validItems(items)
	if len(valid) == 0 {
		e.log.Warn("no valid items with URLs for synthesis")
		return Fallback(nil, e.loc)
	}

	if e.gen == nil {
		e.log.Warn("no generative credential configured, building raw digest")
		return Fallback(valid, e.loc)
	}

	payload, err := json.Marshal(valid)
	if err != nil {
		e.log.Error("failed to serialize items for synthesis", "err", err)
		return Fallback(valid, e.loc)
	}

	e.log.Info("synthesizing digest", "items", len(valid))

	for att := firstAttempt; att <= retried; att++ {
		digest, aerr := e.attemptOnce(ctx, string(payload), valid)
		if aerr == nil {
			return digest
		}
		if att == retried {
			e.log.Error("synthesis failed after retry, building raw digest", "err", aerr)
			break
		}
		e.log.Warn("synthesis attempt failed, retrying after cooldown", "err", aerr, "cooldown", e.cooldown)
		select {
		case <-time.After(e.cooldown):
		case <-ctx.Done():
			e.log.Warn("synthesis cancelled during cooldown")
			return Fallback(valid, e.loc)
		}
	}
	return Fallback(valid, e.loc)
}

// attemptOnce performs one generation round trip, parses the structured
// response and verifies its provenance.
func (e *Engine) attemptOnce(ctx context.Context, payload string, valid []types.NewsItem) (types.Digest, error) {
	raw, err := e.gen.Generate(ctx, payload)
	if err != nil {
		return types.Digest{}, fmt.Errorf("generation failed: %w", err)
	}

	var digest types.Digest
	if err := json.Unmarshal([]byte(raw), &digest); err != nil {
		return types.Digest{}, fmt.Errorf("failed to parse generated output: %w", err)
	}

	e.verify(&digest, valid)
	return digest, nil
}

// verify enforces the provenance invariant: every entry in the categorized
// lists must carry a source_url drawn from the trusted input set. Entries
// with an absent, blank or altered URL are dropped and logged. This runs on
// every successful parse, before the digest is considered usable.
func (e *Engine) verify(d *types.Digest, valid []types.NewsItem) {
	trusted := make(map[string]struct{}, len(valid))
	for _, item := range valid {
		trusted[item.URL] = struct{}{}
	}

	d.CriticalAlerts = e.verifySection("critical_alerts", d.CriticalAlerts, trusted)
	d.VulnerabilitiesAndPatches = e.verifySection("vulnerabilities_and_patches", d.VulnerabilitiesAndPatches, trusted)
	d.BreachesAndIncidents = e.verifySection("breaches_and_incidents", d.BreachesAndIncidents, trusted)
	d.LatamIntelligence = e.verifySection("latam_venezuela_intelligence", d.LatamIntelligence, trusted)
}

func (e *Engine) verifySection(section string, entries []types.DigestEntry, trusted map[string]struct{}) []types.DigestEntry {
	kept := make([]types.DigestEntry, 0, len(entries))
	for _, entry := range entries {
		if _, ok := trusted[entry.SourceURL]; ok {
			kept = append(kept, entry)
			continue
		}
		e.log.Warn("fabrication detected: removed entry with unverified source URL",
			"section", section, "url", entry.SourceURL, "title", entry.Title)
	}
	return kept
}

// validItems filters to items eligible for synthesis: non-empty URL.
func validItems(items []types.NewsItem) []types.NewsItem {
	valid := make([]types.NewsItem, 0, len(items))
	for _, item := range items {
		if item.URL != "" {
			valid = append(valid, item)
		}
	}
	return valid
}
