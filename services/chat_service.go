package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/foodzy/foodzy-app/models"
	"github.com/foodzy/foodzy-app/utils"
	"gorm.io/gorm"
)

type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ChatService converses and, on an order intent with a matching menu item,
// silently adds the first match to the signed-in caller's cart.
type ChatService struct {
	DB        *gorm.DB
	Generator ReplyGenerator
}

func NewChatService(db *gorm.DB, generator ReplyGenerator) *ChatService {
	return &ChatService{DB: db, Generator: generator}
}

// Respond produces the assistant reply for one turn. userID zero means the
// caller is not signed in and the cart is never touched.
func (s *ChatService) Respond(ctx context.Context, userID uint, message string, history []ChatMessage) string {
	if IsOrderIntent(message) {
		if keywords := ExtractFoodKeywords(message); len(keywords) > 0 {
			return s.respondToOrder(userID, message, keywords)
		}
	}
	return s.generateReply(ctx, message, history)
}

func (s *ChatService) respondToOrder(userID uint, message string, keywords []string) string {
	var items []models.FoodItem
	err := s.DB.Where("is_available = ?", true).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(keywords[0])+"%").
		Limit(3).
		Find(&items).Error
	if err != nil {
		utils.ErrorLogger.Printf("Chat food lookup failed: %v", err)
		return RuleReply(message)
	}

	if len(items) == 0 {
		return "I couldn't find that specific item. 😕\nWould you like to see our popular categories instead?"
	}

	if userID != 0 {
		if err := s.addToCart(userID, items[0]); err != nil {
			utils.ErrorLogger.Printf("Chat cart add failed: %v", err)
		}
	}

	reply := fmt.Sprintf("Great choice! I've added %s to your cart. 🛒\n", items[0].Name)
	if len(items) > 1 {
		var others []string
		for _, item := range items[1:] {
			others = append(others, item.Name)
		}
		reply += fmt.Sprintf("We also have %s. Would you like to try those?", strings.Join(others, ", "))
	} else {
		reply += "Anything else for your order?"
	}
	return reply
}

// addToCart mirrors the cart controller's merge semantics: one row per
// (user, food item), quantity incremented on repeat adds, price locked at
// add time.
func (s *ChatService) addToCart(userID uint, item models.FoodItem) error {
	var existing models.CartItem
	err := s.DB.Where("user_id = ? AND food_item_id = ?", userID, item.ID).First(&existing).Error
	if err == nil {
		existing.Quantity++
		return s.DB.Save(&existing).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	return s.DB.Create(&models.CartItem{
		UserID:     userID,
		FoodItemID: item.ID,
		Quantity:   1,
		PriceAtAdd: item.CurrentPrice,
	}).Error
}

func (s *ChatService) generateReply(ctx context.Context, message string, history []ChatMessage) string {
	if s.Generator == nil {
		return RuleReply(message)
	}

	reply, err := s.Generator.Reply(ctx, history, message)
	if err != nil {
		utils.ErrorLogger.Printf("Chat model fallback: %v", err)
		return RuleReply(message)
	}
	return reply
}
