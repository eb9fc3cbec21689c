package controllers

import (
	"errors"
	"net/http"

	"github.com/foodzy/foodzy-app/i18n"
	"github.com/foodzy/foodzy-app/services"
	"github.com/foodzy/foodzy-app/utils"
	"github.com/gin-gonic/gin"
)

type TranslationController struct {
	Translator *services.Translator
}

func NewTranslationController(translator *services.Translator) *TranslationController {
	return &TranslationController{Translator: translator}
}

// Translate proxies to the translation API; any upstream failure returns
// the original text rather than an error.
func (tc *TranslationController) Translate(c *gin.Context) {
	var body struct {
		Q      string `json:"q" binding:"required"`
		Source string `json:"source"`
		Target string `json:"target" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Source == "" {
		body.Source = "en"
	}

	translated := tc.Translator.Translate(body.Q, body.Source, body.Target)
	utils.RespondJSON(c, http.StatusOK, "Translated", gin.H{
		"translated_text": translated,
	})
}

func (tc *TranslationController) Detect(c *gin.Context) {
	var body struct {
		Q string `json:"q" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Detected language", gin.H{
		"language": tc.Translator.Detect(body.Q),
	})
}

// GetLanguages lists the supported languages with their native names.
func (tc *TranslationController) GetLanguages(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Supported languages", services.SupportedLanguages)
}

// GetStrings serves the fixed UI string table for one language, English
// filling untranslated keys.
func (tc *TranslationController) GetStrings(c *gin.Context) {
	lang := c.Param("lang")
	if !i18n.Supported(lang) {
		utils.RespondError(c, http.StatusNotFound, errors.New("unsupported language"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "UI strings", i18n.Strings(lang))
}
