package services

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// FallbackChatReply is returned whenever the AI backend fails or times out
const FallbackChatReply = "I'm having a little trouble right now. Please browse our catalog or email support and we'll get right back to you!"

// ChatMessage represents a message exchanged over the chat WebSocket
type ChatMessage struct {
	Message string `json:"message"`
}

// ChatReply represents the assistant's answer
type ChatReply struct {
	Reply    string `json:"reply"`
	Fallback bool   `json:"fallback"`
}

// ChatService bridges the storefront chat widget to the AI service over a
// WebSocket connection
type ChatService struct {
	ai       *AIService
	upgrader websocket.Upgrader
}

// NewChatService creates a new chat service
func NewChatService(ai *AIService) *ChatService {
	return &ChatService{
		ai: ai,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleWebSocket upgrades the connection and answers each inbound message
// with a generated reply. Closing the connection cancels any in-flight AI
// request.
func (s *ChatService) HandleWebSocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade chat connection: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	for {
		var msg ChatMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Chat connection error: %v", err)
			}
			return
		}
		if msg.Message == "" {
			continue
		}

		reply := s.answer(ctx, msg.Message)
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("Failed to write chat reply: %v", err)
			return
		}
	}
}

// answer generates a reply for one message, substituting the fallback on any
// failure
func (s *ChatService) answer(ctx context.Context, message string) ChatReply {
	requestCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	prompt := "You are a friendly shopping assistant for an online clothing store. " +
		"Answer the customer's question briefly and helpfully.\n\nCustomer: " + message

	text, err := s.ai.GenerateText(requestCtx, prompt)
	if err != nil {
		log.Printf("Chat generation failed, using fallback: %v", err)
		return ChatReply{Reply: FallbackChatReply, Fallback: true}
	}
	return ChatReply{Reply: text}
}
