package bot

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"roomwizard/service"
)

// SessionClient adapts a discordgo session to the platform interfaces the
// services consume. It maps "gone" REST responses to service.ErrNotFound.
type SessionClient struct {
	session *discordgo.Session
}

func NewSessionClient(session *discordgo.Session) *SessionClient {
	return &SessionClient{session: session}
}

// Message fetches a fresh snapshot of a message's pinned state and its
// outstanding pin reactions
func (c *SessionClient) Message(ctx context.Context, channelID, messageID string) (*service.MessageSnapshot, error) {
	msg, err := c.session.ChannelMessage(channelID, messageID)
	if err != nil {
		if isNotFound(err) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}

	snapshot := &service.MessageSnapshot{
		Pinned: msg.Pinned,
	}
	for _, reaction := range msg.Reactions {
		if reaction.Emoji != nil && reaction.Emoji.Name == service.PinEmoji {
			snapshot.PinReactions = reaction.Count
		}
	}

	return snapshot, nil
}

func (c *SessionClient) Pin(ctx context.Context, channelID, messageID string) error {
	if err := c.session.ChannelMessagePin(channelID, messageID); err != nil {
		if isNotFound(err) {
			return service.ErrNotFound
		}
		return err
	}
	return nil
}

func (c *SessionClient) Unpin(ctx context.Context, channelID, messageID string) error {
	if err := c.session.ChannelMessageUnpin(channelID, messageID); err != nil {
		if isNotFound(err) {
			return service.ErrNotFound
		}
		return err
	}
	return nil
}

func (c *SessionClient) EditName(ctx context.Context, channelID int64, name string) error {
	_, err := c.session.ChannelEdit(strconv.FormatInt(channelID, 10), &discordgo.ChannelEdit{
		Name: name,
	})
	if err != nil && isNotFound(err) {
		return service.ErrNotFound
	}
	return err
}

func (c *SessionClient) EditTopic(ctx context.Context, channelID int64, topic string) error {
	_, err := c.session.ChannelEdit(strconv.FormatInt(channelID, 10), &discordgo.ChannelEdit{
		Topic: topic,
	})
	if err != nil && isNotFound(err) {
		return service.ErrNotFound
	}
	return err
}

// isNotFound reports whether a REST error means the target no longer exists
func isNotFound(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}
	if restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeUnknownChannel, discordgo.ErrCodeUnknownMessage:
			return true
		}
	}
	return restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}
