package http

import (
	"morning-assistant/internal/chat"
	"morning-assistant/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	SessionID string `json:"session_id" binding:"omitempty,max=128"`
	Message   string `json:"message"    binding:"required,max=4000"`
}

func (r chatReq) toInput() chat.RespondInput {
	return chat.RespondInput{
		SessionID: r.SessionID,
		Message:   r.Message,
	}
}

// --- Response DTOs ---

type sourceResp struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

func newSourceResp(s model.SearchResult) sourceResp {
	return sourceResp{
		Title:   s.Title,
		Snippet: s.Snippet,
		URL:     s.URL,
	}
}

type videoResp struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Channel  string `json:"channel"`
	Duration string `json:"duration,omitempty"`
}

func newVideoResp(v model.VideoResult) videoResp {
	return videoResp{
		Title:    v.Title,
		URL:      v.URL,
		Channel:  v.Channel,
		Duration: v.Duration,
	}
}

type chatResp struct {
	SessionID string       `json:"session_id"`
	Reply     string       `json:"reply"`
	Intent    string       `json:"intent"`
	Sources   []sourceResp `json:"sources,omitempty"`
	Videos    []videoResp  `json:"videos,omitempty"`
}

func (h *handler) newChatResp(out chat.RespondOutput) chatResp {
	resp := chatResp{
		SessionID: out.SessionID,
		Reply:     out.Reply,
		Intent:    string(out.Intent),
	}
	for _, s := range out.Sources {
		resp.Sources = append(resp.Sources, newSourceResp(s))
	}
	for _, v := range out.Videos {
		resp.Videos = append(resp.Videos, newVideoResp(v))
	}
	return resp
}

type starterResp struct {
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

type startersResp struct {
	Starters []starterResp `json:"starters"`
}

func (h *handler) newStartersResp(starters []chat.Starter) startersResp {
	resp := startersResp{Starters: make([]starterResp, len(starters))}
	for i, s := range starters {
		resp.Starters[i] = starterResp{Label: s.Label, Prompt: s.Prompt}
	}
	return resp
}

type resetResp struct {
	SessionID string `json:"session_id"`
	Reset     bool   `json:"reset"`
}
