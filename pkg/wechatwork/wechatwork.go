// wechatwork/wechatwork.go
package wechatwork

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// DefaultWebhookURL is the WeChat Work group robot endpoint
const DefaultWebhookURL = "https://qyapi.weixin.qq.com/cgi-bin/webhook/send"

// WeChatWorkMessage Webhook message body
type WeChatWorkMessage struct {
	MsgType  string           `json:"msgtype"`
	Text     *TextContent     `json:"text,omitempty"`
	Markdown *MarkdownContent `json:"markdown,omitempty"`
}

type TextContent struct {
	Content             string   `json:"content"`
	MentionedList       []string `json:"mentioned_list,omitempty"`
	MentionedMobileList []string `json:"mentioned_mobile_list,omitempty"`
}

type MarkdownContent struct {
	Content string `json:"content"`
}

// NotificationSender posts job list summaries to a group robot
type NotificationSender struct {
	WebhookURL string
	WebhookKey string
	Enabled    bool
	Client     *http.Client
}

// NewNotificationSender is disabled when webhookKey is empty
func NewNotificationSender(webhookKey string) *NotificationSender {
	return &NotificationSender{
		WebhookURL: DefaultWebhookURL,
		WebhookKey: webhookKey,
		Enabled:    webhookKey != "",
		Client:     http.DefaultClient,
	}
}

func (ns *NotificationSender) SendText(content string, mentionedList, mentionedMobileList []string) error {
	if !ns.Enabled {
		return nil
	}

	return ns.send(WeChatWorkMessage{
		MsgType: "text",
		Text: &TextContent{
			Content:             content,
			MentionedList:       mentionedList,
			MentionedMobileList: mentionedMobileList,
		},
	})
}

func (ns *NotificationSender) SendMarkdown(content string) error {
	if !ns.Enabled {
		return nil
	}

	return ns.send(WeChatWorkMessage{
		MsgType: "markdown",
		Markdown: &MarkdownContent{
			Content: content,
		},
	})
}

func (ns *NotificationSender) send(message WeChatWorkMessage) error {
	var webhookURL = fmt.Sprintf("%s?key=%s", ns.WebhookURL, ns.WebhookKey)

	jsonData, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	var client = ns.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Post(webhookURL, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("post notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("notification status: %d", resp.StatusCode)
	}

	slog.Info("notification sent", "msgtype", message.MsgType)
	return nil
}
