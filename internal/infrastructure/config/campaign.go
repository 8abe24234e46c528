package config

// DefaultLevelMessage is shown when a completed level has no message of its own
const DefaultLevelMessage = "Level complete!"

// DefaultFinalMessage is shown after the last level when the campaign has no finale text
const DefaultFinalMessage = "We reached the end, but the adventure never does."

// CampaignConfig is the root config for campaign.yaml
type CampaignConfig struct {
	Title string `yaml:"title"`

	// Levels lists level file names (without extension) in play order
	Levels []string `yaml:"levels"`

	// Messages[i] is shown after level i is completed
	Messages []string `yaml:"messages"`

	FinalMessage string `yaml:"finalMessage"`
}

// MessageFor returns the completion message for the level at index,
// falling back to DefaultLevelMessage
func (c *CampaignConfig) MessageFor(index int) string {
	if index < 0 || index >= len(c.Messages) || c.Messages[index] == "" {
		return DefaultLevelMessage
	}
	return c.Messages[index]
}
