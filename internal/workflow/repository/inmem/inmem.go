package inmem

import (
	"context"
	"fmt"
	"strings"

	"workflow-automation-agent/internal/workflow"
)

// Repository is an in-memory template catalog. It serves a small fixture
// set so the agent pipeline works end to end without an external catalog
// service.
type Repository struct {
	templates []template
}

type template struct {
	workflow.Candidate
	definition workflow.Definition
}

// New creates the in-memory repository with the built-in fixture templates.
func New() *Repository {
	return &Repository{templates: fixtures()}
}

// Search matches templates whose integrations or name words appear in the
// query text. When nothing matches, the first two templates are returned as
// generic suggestions so downstream scoring still has material to rank.
func (r *Repository) Search(ctx context.Context, query string) ([]workflow.Candidate, error) {
	queryLower := strings.ToLower(query)

	matched := make([]workflow.Candidate, 0, len(r.templates))
	for _, tpl := range r.templates {
		if r.matches(tpl, queryLower) {
			matched = append(matched, tpl.Candidate)
		}
	}

	if len(matched) == 0 {
		for i := 0; i < len(r.templates) && i < 2; i++ {
			matched = append(matched, r.templates[i].Candidate)
		}
	}
	return matched, nil
}

// Fetch returns the workflow definition for a template ID.
func (r *Repository) Fetch(ctx context.Context, id string) (workflow.Definition, error) {
	for _, tpl := range r.templates {
		if tpl.ID == id {
			return tpl.definition, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", workflow.ErrTemplateNotFound, id)
}

func (r *Repository) matches(tpl template, queryLower string) bool {
	for _, integration := range tpl.Integrations {
		name := strings.ToLower(integration)
		if strings.Contains(queryLower, name) || strings.Contains(queryLower, name+"s") {
			return true
		}
	}
	for _, word := range strings.Fields(strings.ToLower(tpl.Name)) {
		if len(word) > 3 && strings.Contains(queryLower, word) {
			return true
		}
	}
	return false
}

func fixtures() []template {
	return []template{
		{
			Candidate: workflow.Candidate{
				ID:           "gmail-slack-notify",
				Name:         "Gmail to Slack Notification",
				Description:  "Sends a Slack message when a new email arrives in Gmail",
				Integrations: []string{"Gmail", "Slack"},
				Category:     "communication",
			},
			definition: mockDefinition("Gmail to Slack Notification", "n8n-nodes-base.gmailTrigger"),
		},
		{
			Candidate: workflow.Candidate{
				ID:           "webhook-discord-alert",
				Name:         "Webhook to Discord Alert",
				Description:  "Posts an alert to a Discord channel when a webhook fires",
				Integrations: []string{"Webhook", "Discord"},
				Category:     "alerting",
			},
			definition: mockDefinition("Webhook to Discord Alert", "n8n-nodes-base.webhook"),
		},
		{
			Candidate: workflow.Candidate{
				ID:           "schedule-backup-gdrive",
				Name:         "Scheduled Backup to Google Drive",
				Description:  "Copies files to Google Drive on a recurring schedule",
				Integrations: []string{"Schedule", "Storage"},
				Category:     "backup",
			},
			definition: mockDefinition("Scheduled Backup to Google Drive", "n8n-nodes-base.scheduleTrigger"),
		},
	}
}

// mockDefinition builds a minimal importable workflow: one trigger node and
// an empty connection map.
func mockDefinition(name, triggerNodeType string) workflow.Definition {
	return workflow.Definition{
		"name": name,
		"nodes": []interface{}{
			map[string]interface{}{
				"name":       "Trigger",
				"type":       triggerNodeType,
				"position":   []interface{}{250, 300},
				"parameters": map[string]interface{}{},
			},
		},
		"connections": map[string]interface{}{},
		"settings":    map[string]interface{}{},
	}
}
