package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const guildMembersPageSize = 1000

// discordSession is the slice of the discordgo REST API the notifier uses.
type discordSession interface {
	GuildMembers(guildID string, after string, limit int, options ...discordgo.RequestOption) ([]*discordgo.Member, error)
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// discordNotifier DMs every guild member holding the configured operator
// role. Individual member failures (closed DMs, rate limits) are logged and
// skipped so one blocked mailbox never silences the rest of the audience.
type discordNotifier struct {
	session   discordSession
	guildID   string
	roleID    string
	sendDelay time.Duration
	logger    *zap.Logger
}

func (d *discordNotifier) NotifyServerDown(ctx context.Context, alert Alert) error {
	members, err := d.resolveAudience()
	if err != nil {
		return fmt.Errorf("DiscordNotifier.NotifyServerDown: %w", err)
	}
	if len(members) == 0 {
		d.logger.Warn("no guild members hold the alert role, nobody to notify",
			zap.String("guild_id", d.guildID),
			zap.String("role_id", d.roleID))
		return nil
	}

	embed := d.buildAlertEmbed(alert)
	for i, member := range members {
		if i > 0 && d.sendDelay > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("DiscordNotifier.NotifyServerDown: %w", ctx.Err())
			case <-time.After(d.sendDelay):
			}
		}
		channel, err := d.session.UserChannelCreate(member.User.ID)
		if err != nil {
			d.logger.Warn("failed to open DM channel, skipping member",
				zap.String("user_id", member.User.ID),
				zap.Error(err))
			continue
		}
		if _, err = d.session.ChannelMessageSendEmbed(channel.ID, embed); err != nil {
			d.logger.Warn("failed to send alert DM, skipping member",
				zap.String("user_id", member.User.ID),
				zap.Error(err))
		}
	}
	return nil
}

func (d *discordNotifier) resolveAudience() ([]*discordgo.Member, error) {
	var holders []*discordgo.Member
	after := ""
	for {
		page, err := d.session.GuildMembers(d.guildID, after, guildMembersPageSize)
		if err != nil {
			return nil, fmt.Errorf("listing guild members: %w", err)
		}
		for _, member := range page {
			if member.User == nil || member.User.Bot {
				continue
			}
			for _, role := range member.Roles {
				if role == d.roleID {
					holders = append(holders, member)
					break
				}
			}
		}
		if len(page) < guildMembersPageSize {
			return holders, nil
		}
		after = page[len(page)-1].User.ID
	}
}

func (d *discordNotifier) buildAlertEmbed(alert Alert) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🔴 Server down: %s", alert.ServerName),
		Description: fmt.Sprintf(
			"**%s** has failed %d consecutive uptime checks.\nPlease investigate and restore the server.",
			alert.ServerName, alert.Failures),
		Color: 0xED4245,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Server ID", Value: alert.ServerID, Inline: true},
			{Name: "Consecutive failures", Value: fmt.Sprintf("%d", alert.Failures), Inline: true},
			{Name: "Detected at", Value: alert.DetectedAt.UTC().Format(time.RFC1123), Inline: false},
		},
	}
}

// NewDiscordNotifier builds a REST-only discordgo session, no gateway
// connection is opened.
func NewDiscordNotifier(botToken string, guildID string, roleID string, sendDelay time.Duration, logger *zap.Logger) (Notifier, error) {
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("NewDiscordNotifier: %w", err)
	}
	return &discordNotifier{
		session:   session,
		guildID:   guildID,
		roleID:    roleID,
		sendDelay: sendDelay,
		logger:    logger,
	}, nil
}
