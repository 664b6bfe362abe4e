package service

import (
	"context"

	"saheli/internal/domain"
)

// policyPrompter answers every call prompt with a fixed choice. It stands in
// for the interactive prompt when a client cannot hold a decision dialog open,
// which is the case for the plain HTTP surface.
type policyPrompter struct {
	choice domain.CallChoice
}

func NewPolicyPrompter(choice domain.CallChoice) DecisionPrompter {
	return policyPrompter{choice: choice}
}

func (p policyPrompter) PromptCallDecision(ctx context.Context, contactName string) (domain.CallChoice, error) {
	return p.choice, nil
}
