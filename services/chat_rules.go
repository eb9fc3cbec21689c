package services

import (
	"regexp"
	"strings"
)

var orderKeywords = []string{"order", "want", "get", "buy", "add", "cart"}

// foodKeywords is the fixed vocabulary matched against user messages when an
// order intent is detected.
var foodKeywords = []string{
	"burger", "pizza", "pasta", "salad", "sandwich", "fries",
	"chicken", "beef", "fish", "vegetarian", "vegan",
	"margherita", "pepperoni", "carbonara", "alfredo",
	"caesar", "greek", "coffee", "tea", "juice", "smoothie",
	"cake", "ice cream", "dessert",
}

var greetingPattern = regexp.MustCompile(`^(hi|hello|hey|good morning|good evening)`)

// IsOrderIntent classifies whether the user wishes to place an order rather
// than ask a general question.
func IsOrderIntent(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range orderKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ExtractFoodKeywords returns every vocabulary word contained in the message.
func ExtractFoodKeywords(message string) []string {
	lower := strings.ToLower(message)
	var found []string
	for _, kw := range foodKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// RuleReply is the deterministic rule-based responder. It answers whenever
// the hosted model is unavailable or fails.
func RuleReply(message string) string {
	lower := strings.ToLower(message)

	if greetingPattern.MatchString(lower) {
		return "Hello! 👋 I'm your food ordering assistant. I can help you find and order delicious food. What would you like to eat today?"
	}

	if strings.Contains(lower, "order") || strings.Contains(lower, "want") || strings.Contains(lower, "get") {
		switch {
		case strings.Contains(lower, "burger"):
			return "Great choice! 🍔 We have several burger options. Let me show you our burger menu. Would you like a classic beef burger, chicken burger, or veggie burger?"
		case strings.Contains(lower, "pizza"):
			return "Excellent! 🍕 We have amazing pizzas. Would you prefer Margherita, Pepperoni, Vegetarian, or BBQ Chicken pizza?"
		case strings.Contains(lower, "pasta"):
			return "Wonderful! 🍝 Our pasta dishes are delicious. We have Carbonara, Bolognese, Alfredo, and Pesto pasta. Which one sounds good?"
		case strings.Contains(lower, "salad"):
			return "Healthy choice! 🥗 We have Caesar Salad, Greek Salad, and Garden Fresh Salad. Which would you like?"
		case strings.Contains(lower, "drink"), strings.Contains(lower, "beverage"):
			return "Sure! 🥤 We have soft drinks, juices, smoothies, and coffee. What would you like to drink?"
		}
		return "I'd be happy to help you order! Could you tell me what type of food you're craving? We have burgers, pizzas, pasta, salads, and more!"
	}

	if strings.Contains(lower, "menu") || strings.Contains(lower, "what do you have") {
		return "We have a wide variety of delicious options! 🍽️ Our menu includes:\n• Burgers 🍔\n• Pizzas 🍕\n• Pasta 🍝\n• Salads 🥗\n• Desserts 🍰\n• Beverages 🥤\n\nWhat would you like to explore?"
	}

	if strings.Contains(lower, "vegetarian") || strings.Contains(lower, "vegan") {
		return "We have great vegetarian and vegan options! 🌱 Let me show you our plant-based menu items."
	}

	if strings.Contains(lower, "price") || strings.Contains(lower, "cost") || strings.Contains(lower, "how much") {
		return "Our prices vary by item. You can browse our menu to see detailed pricing. Most items range from ₹150 to ₹500. Would you like to see a specific category?"
	}

	if strings.Contains(lower, "delivery") || strings.Contains(lower, "deliver") {
		return "We deliver to your location! 🚚 Delivery typically takes 30-45 minutes. You can track your order in real-time once it's placed."
	}

	if strings.Contains(lower, "help") {
		return "I'm here to help! You can:\n• Ask about our menu\n• Order food by telling me what you want\n• Check delivery options\n• Ask about prices\n\nJust let me know what you need!"
	}

	return "I'm here to help you order food! You can tell me what you'd like to eat, ask about our menu, or browse our categories. What can I get for you today? 😊"
}
