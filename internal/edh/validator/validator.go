// Package validator orchestrates deck validation: input resolution, parsing,
// classification, salt scoring, legality, and bracket checks combine into one
// response document.
package validator

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/ramonehamilton/EDH-Companion/internal/deckhost"
	"github.com/ramonehamilton/EDH-Companion/internal/edh/brackets"
	"github.com/ramonehamilton/EDH-Companion/internal/edh/decklist"
	"github.com/ramonehamilton/EDH-Companion/internal/edh/legality"
	"github.com/ramonehamilton/EDH-Companion/internal/edh/salt"
)

// Request carries a deck through one or more input channels plus validation
// options. The boolean options default to true when omitted.
type Request struct {
	Decklist         []string `json:"decklist,omitempty"`
	DecklistText     string   `json:"decklist_text,omitempty"`
	DecklistChunks   []string `json:"decklist_chunks,omitempty"`
	DecklistURL      string   `json:"decklist_url,omitempty"`
	Commander        string   `json:"commander,omitempty"`
	TargetBracket    string   `json:"target_bracket,omitempty"`
	ValidateBracket  *bool    `json:"validate_bracket,omitempty"`
	ValidateLegality *bool    `json:"validate_legality,omitempty"`
}

func (r *Request) validateBracket() bool {
	return r.ValidateBracket == nil || *r.ValidateBracket
}

func (r *Request) validateLegality() bool {
	return r.ValidateLegality == nil || *r.ValidateLegality
}

// DeckSummary is the top-level overview of the validated deck.
type DeckSummary struct {
	TotalCards        int            `json:"total_cards"`
	Commander         string         `json:"commander,omitempty"`
	TargetBracket     string         `json:"target_bracket,omitempty"`
	HasDuplicates     bool           `json:"has_duplicates"`
	IllegalDuplicates map[string]int `json:"illegal_duplicates"`
}

// SaltScores summarizes commander, deck, and combined salt.
type SaltScores struct {
	CommanderSaltScore       float64         `json:"commander_salt_score"`
	DeckSaltScore            float64         `json:"deck_salt_score"`
	CombinedSaltScore        float64         `json:"combined_salt_score"`
	SaltTier                 string          `json:"salt_tier"`
	CommanderSaltDescription string          `json:"commander_salt_description"`
	DeckSaltDescription      string          `json:"deck_salt_description"`
	CombinedSaltDescription  string          `json:"combined_salt_description"`
	SaltLevel                string          `json:"salt_level"`
	TopOffenders             []salt.CardSalt `json:"top_offenders"`
	SaltyCardCount           int             `json:"salty_card_count"`
	AverageSaltPerCard       float64         `json:"average_salt_per_card"`
}

// Response is the full validation result.
type Response struct {
	Success             bool                 `json:"success"`
	DeckSummary         *DeckSummary         `json:"deck_summary"`
	Cards               []brackets.Card      `json:"cards"`
	BracketValidation   *brackets.Validation `json:"bracket_validation,omitempty"`
	LegalityValidation  *legality.Result     `json:"legality_validation,omitempty"`
	ValidationTimestamp string               `json:"validation_timestamp"`
	Errors              []string             `json:"errors"`
	Warnings            []string             `json:"warnings"`
	SaltScores          *SaltScores          `json:"salt_scores,omitempty"`
}

// Validator wires the collaborating services together.
type Validator struct {
	salt      *salt.Service
	loader    *brackets.Loader
	extractor *deckhost.Extractor
	cache     *resultCache
}

// New creates a Validator over the given collaborators. extractor may be nil
// when URL-based input is not needed.
func New(saltService *salt.Service, loader *brackets.Loader, extractor *deckhost.Extractor) *Validator {
	return &Validator{
		salt:      saltService,
		loader:    loader,
		extractor: extractor,
		cache:     newResultCache(),
	}
}

// Validate runs the full pipeline. Any failure, including panics from deep in
// the pipeline, comes back as a success=false response rather than an error.
func (v *Validator) Validate(ctx context.Context, req *Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("validator: recovered from panic: %v", r)
			resp = failureResponse(fmt.Sprintf("internal error: %v", r))
		}
	}()

	if cached, ok := v.cache.get(Signature(req)); ok {
		return cached
	}

	entries, err := v.resolveEntries(ctx, req)
	if err != nil {
		return failureResponse(err.Error())
	}

	snapshot := v.loader.Load(ctx)

	parsed := decklist.BuildEntries(entries)
	cards := make([]brackets.Card, 0, len(parsed))
	for _, entry := range parsed {
		cards = append(cards, brackets.Classify(entry.Name, entry.Quantity, snapshot))
	}

	illegalDuplicates := legality.FindIllegalDuplicates(cards)

	commanderSalt := 0.0
	if req.Commander != "" {
		commanderSalt = v.salt.CommanderSalt(ctx, req.Commander)
	}

	v.salt.EnsureLoaded(ctx)

	// Expand quantities so the deck average weights each copy.
	var cardNames []string
	for _, card := range cards {
		for i := 0; i < card.Quantity; i++ {
			cardNames = append(cardNames, card.Name)
		}
	}
	deckSalt := v.salt.CalculateDeckSalt(cardNames)

	combinedSalt := round2((commanderSalt + deckSalt.AverageSalt) / 2)

	saltScores := &SaltScores{
		CommanderSaltScore:       commanderSalt,
		DeckSaltScore:            deckSalt.AverageSalt,
		CombinedSaltScore:        combinedSalt,
		SaltTier:                 deckSalt.SaltTier,
		CommanderSaltDescription: salt.LevelDescription(commanderSalt),
		DeckSaltDescription:      salt.LevelDescription(deckSalt.AverageSalt),
		CombinedSaltDescription:  salt.LevelDescription(combinedSalt),
		SaltLevel:                deckSalt.SaltTier,
		TopOffenders:             deckSalt.TopOffenders,
		SaltyCardCount:           deckSalt.SaltyCardCount,
		AverageSaltPerCard:       deckSalt.AverageSalt,
	}

	var legalityResult *legality.Result
	if req.validateLegality() {
		result := legality.Check(cards, req.Commander, illegalDuplicates)
		legalityResult = &result
	}

	var bracketValidation *brackets.Validation
	if req.validateBracket() {
		targetBracket := req.TargetBracket
		bracketInferred := false
		if targetBracket == "" {
			targetBracket = brackets.InferBracket(cards, snapshot.ComboPairs)
			bracketInferred = true
		}
		extraTurnCards := v.loader.ExtraTurnCards(ctx)
		validation := brackets.Validate(cards, targetBracket, bracketInferred, snapshot, extraTurnCards)
		bracketValidation = &validation
	}

	resp = Response{
		Success: true,
		DeckSummary: &DeckSummary{
			TotalCards:        brackets.TotalCardCount(cards),
			Commander:         req.Commander,
			TargetBracket:     req.TargetBracket,
			HasDuplicates:     len(illegalDuplicates) > 0,
			IllegalDuplicates: illegalDuplicates,
		},
		Cards:               cards,
		BracketValidation:   bracketValidation,
		LegalityValidation:  legalityResult,
		ValidationTimestamp: time.Now().UTC().Format(time.RFC3339),
		Errors:              []string{},
		Warnings:            []string{},
		SaltScores:          saltScores,
	}

	v.cache.put(Signature(req), resp)
	return resp
}

// resolveEntries combines the request's input channels into one line list.
// All supplied channels contribute; an empty combined result is an error.
func (v *Validator) resolveEntries(ctx context.Context, req *Request) ([]string, error) {
	var entries []string

	for _, line := range req.Decklist {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}

	if req.DecklistText != "" {
		entries = append(entries, decklist.ParseBlock(req.DecklistText)...)
	}

	for _, chunk := range req.DecklistChunks {
		entries = append(entries, decklist.ParseBlock(chunk)...)
	}

	if req.DecklistURL != "" {
		if v.extractor == nil {
			return nil, fmt.Errorf("deck URL input is not supported in this configuration")
		}
		hosted, err := v.extractor.Extract(ctx, req.DecklistURL)
		if err != nil {
			return nil, fmt.Errorf("extract decklist from URL: %w", err)
		}
		entries = append(entries, deckhost.Lines(hosted)...)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("decklist cannot be empty after processing input")
	}

	return entries, nil
}

func failureResponse(message string) Response {
	return Response{
		Success:             false,
		DeckSummary:         &DeckSummary{IllegalDuplicates: map[string]int{}},
		Cards:               []brackets.Card{},
		ValidationTimestamp: time.Now().UTC().Format(time.RFC3339),
		Errors:              []string{message},
		Warnings:            []string{},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
