// Package telegram adapts the dispatcher to the Telegram Bot API
package telegram

import (
	"context"
	"io"
	"net/http"
	"path"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"sensutv/internal/core/slug"
	perr "sensutv/internal/platform/errors"
	"sensutv/internal/platform/logger"
	"sensutv/internal/services/bot/domain"
)

// Poller long-polls Telegram and feeds updates to the dispatcher one at
// a time. Replies go back as Markdown.
type Poller struct {
	api        *tgbotapi.BotAPI
	dispatcher domain.DispatcherPort
	log        logger.Logger
}

// New authenticates against Telegram and returns the poller
func New(token string, log logger.Logger) (*Poller, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "telegram auth")
	}
	log.Info().Str("username", api.Self.UserName).Msg("telegram bot authorized")
	return &Poller{api: api, log: log}, nil
}

// SetDispatcher wires the message router before Run
func (p *Poller) SetDispatcher(d domain.DispatcherPort) { p.dispatcher = d }

// Run consumes updates until ctx is done. Updates are handled strictly
// in order; a slow store call backpressures the poll loop.
func (p *Poller) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := p.api.GetUpdatesChan(u)
	defer p.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			p.handle(ctx, upd)
		}
	}
}

func (p *Poller) handle(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	if msg == nil || msg.From == nil {
		return
	}

	in := domain.Incoming{
		ChatID:  msg.Chat.ID,
		UserID:  msg.From.ID,
		Text:    msg.Text,
		Caption: msg.Caption,
	}
	if msg.IsCommand() {
		in.Command = msg.Command()
		in.Args = msg.CommandArguments()
	}
	if msg.Video != nil {
		in.Video = &domain.Attachment{
			FileID:      msg.Video.FileID,
			Filename:    attachmentName(msg.Video.FileName, msg.Video.FileID, ".mp4"),
			ContentType: msg.Video.MimeType,
		}
		if msg.Video.Thumbnail != nil {
			in.Video.ThumbFileID = msg.Video.Thumbnail.FileID
		}
	} else if len(msg.Photo) > 0 {
		// Telegram sends several sizes; the last one is the largest
		best := msg.Photo[len(msg.Photo)-1]
		in.Photo = &domain.Attachment{
			FileID:      best.FileID,
			Filename:    attachmentName("", best.FileUniqueID, ".jpg"),
			ContentType: "image/jpeg",
		}
		if len(msg.Photo) > 1 {
			in.Photo.ThumbFileID = msg.Photo[0].FileID
		}
	}

	reply := p.dispatcher.Dispatch(ctx, in)
	if reply == "" {
		return
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, reply)
	out.ParseMode = tgbotapi.ModeMarkdown
	if _, err := p.api.Send(out); err != nil {
		p.log.Error().Err(err).Int64("chat", msg.Chat.ID).Msg("telegram send failed")
	}
}

// Download implements domain.FilePort over the bot file API
func (p *Poller) Download(ctx context.Context, fileID string) ([]byte, error) {
	f, err := p.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "resolve file %s", fileID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.Link(p.api.Token), nil)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "build download request")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "download file %s", fileID)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, perr.Newf(perr.ErrorCodeUnavailable, "download file %s: status %d", fileID, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// attachmentName reduces a client-supplied filename to a safe flat name.
// Telegram relays whatever the uploader typed, so path separators, dot
// segments and exotic characters are all possible; the result feeds store
// keys and must never contain them. Falls back to the file id when the
// name is missing or nothing survives sanitization.
func attachmentName(name, fileID, defaultExt string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == ".." || base == "/" {
		base = ""
	}

	ext := strings.ToLower(path.Ext(base))
	if ext != "" && slug.Normalize(strings.TrimPrefix(ext, ".")) != strings.TrimPrefix(ext, ".") {
		ext = ""
	}
	if ext == "" {
		ext = defaultExt
	}

	stem := slug.Normalize(strings.TrimSuffix(base, path.Ext(base)))
	if stem == "" {
		stem = fileID
	}
	return stem + ext
}
