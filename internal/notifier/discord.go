package notifier

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/student-council/goodness-api/internal/models"
)

// Notifier posts council events to an external channel. Implementations must
// be safe to skip: callers treat failures as log-and-continue.
type Notifier interface {
	NotifyAnnouncement(announcement models.Announcement) error
	NotifyReview(record models.GoodnessRecord, user models.User) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(botToken, channelID string) (*DiscordNotifier, error) {
	if botToken == "" {
		return nil, fmt.Errorf("discord bot token is empty")
	}
	if channelID == "" {
		return nil, fmt.Errorf("discord channel ID is empty")
	}

	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, err
	}

	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}, nil
}

func (n *DiscordNotifier) NotifyAnnouncement(announcement models.Announcement) error {
	message := fmt.Sprintf("📢 **%s**\n%s", announcement.Title, announcement.Content)
	if announcement.ImageURL != nil {
		message += fmt.Sprintf("\n%s", *announcement.ImageURL)
	}

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}

func (n *DiscordNotifier) NotifyReview(record models.GoodnessRecord, user models.User) error {
	var message string
	if record.Status == models.StatusApproved {
		message = fmt.Sprintf("⭐ **Good deed approved**\n**Student:** %s %s\n**Deed:** %s\n**Points:** %d",
			user.FirstName, user.LastName, record.Description, record.PointsAwarded)
	} else {
		message = fmt.Sprintf("**Good deed reviewed**\n**Student:** %s %s\n**Deed:** %s\n**Status:** %s",
			user.FirstName, user.LastName, record.Description, record.Status)
	}
	if record.AdminFeedback != nil && *record.AdminFeedback != "" {
		message += fmt.Sprintf("\n**Feedback:** %s", *record.AdminFeedback)
	}

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
