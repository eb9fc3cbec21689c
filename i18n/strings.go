// Package i18n holds the fixed UI string tables. English is complete; the
// other languages carry partial tables and fall back to English per key.
package i18n

var en = map[string]string{
	"nav.home":         "Home",
	"nav.menu":         "Menu",
	"nav.offers":       "Offers",
	"nav.cart":         "Cart",
	"nav.orders":       "Orders",
	"nav.profile":      "Profile",
	"auth.login":       "Login",
	"auth.signup":      "Sign Up",
	"auth.logout":      "Logout",
	"cart.add":         "Add to Cart",
	"cart.empty":       "Your cart is empty",
	"order.place":      "Place Order",
	"order.track":      "Track Order",
	"home.title":       "Delicious Food,",
	"home.subtitle":    "Delivered Fast",
	"home.desc":        "Order with AI chatbot, voice commands, or browse our menu",
	"home.browse":      "Browse Menu",
	"home.getStarted":  "Get Started",
	"home.why":         "Why Choose FoodZy?",
	"home.feature.ai":  "AI Chatbot Ordering",
	"home.feature.voice": "Voice Ordering",
	"home.feature.multi": "Multi-Lingual",
	"home.feature.fast":  "Fast Delivery",
	"home.how":         "How It Works",
	"home.step1":       "Choose Your Food",
	"home.step2":       "Place Your Order",
	"home.step3":       "Get It Delivered",
	"menu.title":       "Our Menu",
	"menu.subtitle":    "Hand-crafted dishes made with love and premium ingredients",
	"menu.featured":    "Featured Categories",
	"menu.trending":    "Trending Now",
	"menu.full":        "Full Menu",
	"menu.search":      "Search dishes...",
	"menu.all":         "All Items",
}

var tables = map[string]map[string]string{
	"en": en,
	"ar": {
		"nav.home":    "الرئيسية",
		"nav.menu":    "القائمة",
		"nav.offers":  "العروض",
		"nav.cart":    "السلة",
		"nav.orders":  "الطلبات",
		"nav.profile": "الملف الشخصي",
		"auth.login":  "تسجيل الدخول",
		"auth.signup": "إنشاء حساب",
		"auth.logout": "تسجيل الخروج",
		"cart.add":    "أضف إلى السلة",
		"cart.empty":  "سلتك فارغة",
		"order.place": "إتمام الطلب",
		"order.track": "تتبع الطلب",
	},
	"hi": {
		"nav.home":    "होम",
		"nav.menu":    "मेनू",
		"nav.offers":  "ऑफ़र",
		"nav.cart":    "कार्ट",
		"nav.orders":  "ऑर्डर",
		"nav.profile": "प्रोफ़ाइल",
		"auth.login":  "लॉगिन",
		"auth.signup": "साइन अप",
		"auth.logout": "लॉगआउट",
		"cart.add":    "कार्ट में जोड़ें",
		"cart.empty":  "आपकी कार्ट खाली है",
		"order.place": "ऑर्डर करें",
		"order.track": "ऑर्डर ट्रैक करें",
	},
	"es": {
		"nav.home":    "Inicio",
		"nav.menu":    "Menú",
		"nav.offers":  "Ofertas",
		"nav.cart":    "Carrito",
		"nav.orders":  "Pedidos",
		"nav.profile": "Perfil",
		"auth.login":  "Iniciar sesión",
		"auth.signup": "Registrarse",
		"auth.logout": "Cerrar sesión",
		"cart.add":    "Añadir al carrito",
		"cart.empty":  "Tu carrito está vacío",
		"order.place": "Realizar pedido",
		"order.track": "Seguir pedido",
	},
	"fr": {
		"nav.home":    "Accueil",
		"nav.menu":    "Menu",
		"nav.offers":  "Offres",
		"nav.cart":    "Panier",
		"nav.orders":  "Commandes",
		"nav.profile": "Profil",
		"auth.login":  "Connexion",
		"auth.signup": "S'inscrire",
		"auth.logout": "Déconnexion",
		"cart.add":    "Ajouter au panier",
		"cart.empty":  "Votre panier est vide",
		"order.place": "Passer la commande",
		"order.track": "Suivre la commande",
	},
}

// Supported reports whether a language table exists.
func Supported(lang string) bool {
	_, ok := tables[lang]
	return ok
}

// Strings returns the full string table for lang, with English filling any
// key the language does not translate.
func Strings(lang string) map[string]string {
	table, ok := tables[lang]
	if !ok {
		table = map[string]string{}
	}

	merged := make(map[string]string, len(en))
	for key, value := range en {
		merged[key] = value
	}
	for key, value := range table {
		merged[key] = value
	}
	return merged
}
