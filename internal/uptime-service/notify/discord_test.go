package notify

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSession struct {
	pages      [][]*discordgo.Member
	membersErr error
	channelErr map[string]error
	sendErr    map[string]error
	pageCalls  []string
	dmOpened   []string
	embedsSent map[string]*discordgo.MessageEmbed
}

func (s *stubSession) GuildMembers(guildID string, after string, limit int, options ...discordgo.RequestOption) ([]*discordgo.Member, error) {
	s.pageCalls = append(s.pageCalls, after)
	if s.membersErr != nil {
		return nil, s.membersErr
	}
	if len(s.pages) == 0 {
		return nil, nil
	}
	page := s.pages[0]
	s.pages = s.pages[1:]
	return page, nil
}

func (s *stubSession) UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if err := s.channelErr[recipientID]; err != nil {
		return nil, err
	}
	s.dmOpened = append(s.dmOpened, recipientID)
	return &discordgo.Channel{ID: fmt.Sprintf("dm-%s", recipientID)}, nil
}

func (s *stubSession) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if err := s.sendErr[channelID]; err != nil {
		return nil, err
	}
	if s.embedsSent == nil {
		s.embedsSent = make(map[string]*discordgo.MessageEmbed)
	}
	s.embedsSent[channelID] = embed
	return &discordgo.Message{}, nil
}

func member(id string, bot bool, roles ...string) *discordgo.Member {
	return &discordgo.Member{
		User:  &discordgo.User{ID: id, Bot: bot},
		Roles: roles,
	}
}

func newTestNotifier(session discordSession) *discordNotifier {
	return &discordNotifier{
		session: session,
		guildID: "guild-1",
		roleID:  "role-ops",
		logger:  zap.NewNop(),
	}
}

func TestDiscordNotifier_NotifyServerDown(t *testing.T) {
	alert := Alert{
		ServerID:   "id-1",
		ServerName: "survival-eu-1",
		Failures:   5,
		DetectedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}

	t.Run("Success DMs every role holder and skips bots", func(t *testing.T) {
		session := &stubSession{
			pages: [][]*discordgo.Member{{
				member("u1", false, "role-ops"),
				member("u2", false, "role-other"),
				member("u3", true, "role-ops"),
				member("u4", false, "role-other", "role-ops"),
			}},
		}

		err := newTestNotifier(session).NotifyServerDown(context.Background(), alert)

		require.NoError(t, err)
		assert.Equal(t, []string{"u1", "u4"}, session.dmOpened)
		embed := session.embedsSent["dm-u1"]
		require.NotNil(t, embed)
		assert.Equal(t, "🔴 Server down: survival-eu-1", embed.Title)
		assert.Contains(t, embed.Description, "failed 5 consecutive uptime checks")
	})

	t.Run("Success No role holders found", func(t *testing.T) {
		session := &stubSession{
			pages: [][]*discordgo.Member{{member("u1", false, "role-other")}},
		}

		err := newTestNotifier(session).NotifyServerDown(context.Background(), alert)

		require.NoError(t, err)
		assert.Empty(t, session.dmOpened)
	})

	t.Run("Success Continues past a member whose DMs are closed", func(t *testing.T) {
		session := &stubSession{
			pages: [][]*discordgo.Member{{
				member("u1", false, "role-ops"),
				member("u2", false, "role-ops"),
				member("u3", false, "role-ops"),
			}},
			channelErr: map[string]error{"u2": errors.New("cannot send messages to this user")},
			sendErr:    map[string]error{"dm-u3": errors.New("rate limited")},
		}

		err := newTestNotifier(session).NotifyServerDown(context.Background(), alert)

		require.NoError(t, err)
		assert.Equal(t, []string{"u1", "u3"}, session.dmOpened)
		assert.Contains(t, session.embedsSent, "dm-u1")
		assert.NotContains(t, session.embedsSent, "dm-u3")
	})

	t.Run("Error Listing guild members fails", func(t *testing.T) {
		session := &stubSession{membersErr: errors.New("missing access")}

		err := newTestNotifier(session).NotifyServerDown(context.Background(), alert)

		assert.ErrorContains(t, err, "listing guild members")
	})
}

func TestDiscordNotifier_ResolveAudiencePagination(t *testing.T) {
	fullPage := make([]*discordgo.Member, guildMembersPageSize)
	for i := range fullPage {
		fullPage[i] = member(fmt.Sprintf("u%04d", i), false, "role-other")
	}
	fullPage[10] = member("u0010", false, "role-ops")
	lastPage := []*discordgo.Member{member("tail", false, "role-ops")}

	session := &stubSession{pages: [][]*discordgo.Member{fullPage, lastPage}}
	notifier := newTestNotifier(session)

	holders, err := notifier.resolveAudience()

	require.NoError(t, err)
	require.Len(t, holders, 2)
	assert.Equal(t, "u0010", holders[0].User.ID)
	assert.Equal(t, "tail", holders[1].User.ID)
	assert.Equal(t, []string{"", fullPage[len(fullPage)-1].User.ID}, session.pageCalls)
}
