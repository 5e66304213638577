package telegram

import (
	"errors"
	"net/url"
	"strings"
)

var (
	// ErrInvalidMode is returned for a Mini App mode other than compact or fullscreen.
	ErrInvalidMode = errors.New("mini app mode must be compact or fullscreen")
	// ErrMissingUsername is returned when a link is requested without a bot username.
	ErrMissingUsername = errors.New("bot username is required")
)

const linkBase = "https://t.me/"

// Chat types accepted by ChooseChatLink.
const (
	ChooseUsers    = "users"
	ChooseBots     = "bots"
	ChooseGroups   = "groups"
	ChooseChannels = "channels"
)

// StartAppLink opens the bot's main Mini App: t.me/<bot>?startapp=<param>&mode=<mode>.
func StartAppLink(botUsername, startParam, mode string) (string, error) {
	base, err := botLink(botUsername)
	if err != nil {
		return "", err
	}
	return withQuery(base, "startapp", startParam, mode)
}

// DirectAppLink opens a named Mini App: t.me/<bot>/<app>?startapp=<param>&mode=<mode>.
func DirectAppLink(botUsername, appName, startParam, mode string) (string, error) {
	base, err := botLink(botUsername)
	if err != nil {
		return "", err
	}
	appName = strings.Trim(appName, "/ ")
	if appName == "" {
		return "", errors.New("mini app short name is required")
	}
	return withQuery(base+"/"+url.PathEscape(appName), "startapp", startParam, mode)
}

// AttachLink opens the bot's attachment menu app in the current chat.
func AttachLink(botUsername, startParam string) (string, error) {
	base, err := botLink(botUsername)
	if err != nil {
		return "", err
	}
	return base + "?startattach=" + url.QueryEscape(startParam), nil
}

// ChooseChatLink asks the user to pick a chat of the given types and opens the
// attachment menu app there. No types means all of them.
func ChooseChatLink(botUsername, startParam string, chatTypes ...string) (string, error) {
	link, err := AttachLink(botUsername, startParam)
	if err != nil {
		return "", err
	}
	if len(chatTypes) == 0 {
		chatTypes = []string{ChooseUsers, ChooseBots, ChooseGroups, ChooseChannels}
	}
	escaped := make([]string, 0, len(chatTypes))
	for _, t := range chatTypes {
		escaped = append(escaped, url.QueryEscape(t))
	}
	return link + "&choose=" + strings.Join(escaped, "+"), nil
}

// ValidMode reports whether mode is empty or a supported Mini App display mode.
func ValidMode(mode string) bool {
	return mode == "" || mode == "compact" || mode == "fullscreen"
}

func botLink(botUsername string) (string, error) {
	name := strings.TrimPrefix(strings.TrimSpace(botUsername), "@")
	if name == "" {
		return "", ErrMissingUsername
	}
	return linkBase + url.PathEscape(name), nil
}

func withQuery(base, key, param, mode string) (string, error) {
	if !ValidMode(mode) {
		return "", ErrInvalidMode
	}
	link := base + "?" + key
	if param != "" {
		link += "=" + url.QueryEscape(param)
	}
	if mode != "" {
		link += "&mode=" + mode
	}
	return link, nil
}
