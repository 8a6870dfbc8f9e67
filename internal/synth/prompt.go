package synth

import "google.golang.org/genai"

const systemInstruction = `
You are a professional cybersecurity intelligence analyst writing an executive weekly newsletter.

STRICT RULES - VIOLATIONS ARE NOT ACCEPTABLE:
1. You MUST only use information from the INPUT DATA provided. Never invent, infer, or supplement with your own knowledge.
2. Every claim, vulnerability, CVE, or incident MUST be traceable to an item in INPUT DATA.
3. If the INPUT DATA does not contain enough information to fill a section, write: "No significant events reported this week in this category."
4. Do NOT add commentary, predictions, or opinions unless explicitly part of an "Analyst Commentary" section clearly labeled as such.
5. All source URLs must be copied verbatim from the input data - never generate or modify URLs.
6. CVE IDs must be copied exactly as found in input data.
7. Severity ratings must match what is in the source - do not upgrade or downgrade.
8. Output ONLY valid JSON matching the response schema. No markdown, no prose, no preamble.

INPUT DATA FORMAT: JSON array of news items with fields: source_name, title, summary, url, published_date, severity, cve_ids, category, language, region.
`

func responseSchema() *genai.Schema {
	alertSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":             {Type: genai.TypeString},
			"severity":          {Type: genai.TypeString, Description: "Severity exactly as found in the input item."},
			"description":       {Type: genai.TypeString, Description: "1-2 sentences max. Facts only from input."},
			"cve_ids":           {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"affected_products": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"source_name":       {Type: genai.TypeString},
			"source_url":        {Type: genai.TypeString, Description: "Copied verbatim from the input item."},
		},
		Required: []string{"title", "description", "source_name", "source_url"},
	}

	incidentSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"impact":      {Type: genai.TypeString},
			"source_name": {Type: genai.TypeString},
			"source_url":  {Type: genai.TypeString, Description: "Copied verbatim from the input item."},
		},
		Required: []string{"title", "description", "source_name", "source_url"},
	}

	regionalSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"source_name": {Type: genai.TypeString},
			"source_url":  {Type: genai.TypeString, Description: "Copied verbatim from the input item."},
			"language":    {Type: genai.TypeString},
		},
		Required: []string{"title", "description", "source_name", "source_url"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"week_label": {Type: genai.TypeString, Description: "Week of [DATE RANGE]."},
			"executive_summary": {
				Type:        genai.TypeString,
				Description: "3-4 sentence summary of the most critical events this week. Only facts from input.",
			},
			"critical_alerts":             {Type: genai.TypeArray, Items: alertSchema},
			"vulnerabilities_and_patches": {Type: genai.TypeArray, Items: alertSchema},
			"breaches_and_incidents":      {Type: genai.TypeArray, Items: incidentSchema},
			"latam_venezuela_intelligence": {
				Type:  genai.TypeArray,
				Items: regionalSchema,
			},
			"recommended_actions": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Specific actionable recommendations, only if supported by input data.",
			},
			"stats": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"total_items_analyzed": {Type: genai.TypeInteger},
					"critical_count":       {Type: genai.TypeInteger},
					"high_count":           {Type: genai.TypeInteger},
					"medium_count":         {Type: genai.TypeInteger},
					"sources_scraped":      {Type: genai.TypeInteger},
					"cves_identified":      {Type: genai.TypeInteger},
				},
			},
		},
		Required: []string{"week_label", "executive_summary", "stats"},
	}
}
