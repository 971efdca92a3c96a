package service

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"desi-beats/menu-svc/internal/domain"

	"github.com/google/uuid"
)

var ErrImageKitNotConfigured = errors.New("ImageKit not configured")

// imageKitTokenTTL is how long an upload signature stays valid by default.
const imageKitTokenTTL = 2400 * time.Second

func DefaultHeroSlider() domain.HeroSliderConfig {
	return domain.HeroSliderConfig{Slides: []domain.HeroSlide{
		{
			ID:          1,
			Title:       "Halwa Puri Nashta Deal",
			Description: "2 Puri + 1 Plate Aloo + 1 Cup Halwa",
			Price:       "450",
			BgGradient:  "from-amber-600/90 to-orange-800/90",
		},
		{
			ID:          2,
			Title:       "Family BBQ Platter",
			Description: "Malai Boti 6 Seekh + Naan + Raita",
			Price:       "2400",
			BgGradient:  "from-red-700/90 to-red-900/90",
		},
		{
			ID:          3,
			Title:       "Desi Murgh Karahi",
			Description: "Full Karahi with 4 Naan",
			Price:       "3700",
			BgGradient:  "from-orange-600/90 to-amber-800/90",
		},
	}}
}

type ContentService struct {
	heroSliderPath     string
	imageKitPrivateKey string
	now                func() time.Time
}

func NewContentService(heroSliderPath, imageKitPrivateKey string) *ContentService {
	return &ContentService{heroSliderPath: heroSliderPath, imageKitPrivateKey: imageKitPrivateKey, now: time.Now}
}

// HeroSlider reads the slider file on every call so edits show up without a
// restart. A missing or broken file falls back to the built-in slides.
func (s *ContentService) HeroSlider() domain.HeroSliderConfig {
	if s.heroSliderPath == "" {
		return DefaultHeroSlider()
	}
	raw, err := os.ReadFile(s.heroSliderPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[menu-svc] hero slider config: %v", err)
		}
		return DefaultHeroSlider()
	}
	var cfg domain.HeroSliderConfig
	if err := json.Unmarshal(raw, &cfg); err != nil || len(cfg.Slides) == 0 {
		log.Printf("[menu-svc] hero slider config unusable, using defaults: %v", err)
		return DefaultHeroSlider()
	}
	return cfg
}

// ImageKitAuth signs a client-side upload: signature is
// hex(HMAC-SHA1(privateKey, token+expire)).
func (s *ContentService) ImageKitAuth(token string, expire int64) (*domain.ImageKitAuth, error) {
	if s.imageKitPrivateKey == "" {
		return nil, ErrImageKitNotConfigured
	}
	if token == "" {
		token = uuid.NewString()
	}
	if expire <= 0 {
		expire = s.now().Add(imageKitTokenTTL).Unix()
	}

	mac := hmac.New(sha1.New, []byte(s.imageKitPrivateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))

	return &domain.ImageKitAuth{
		Token:     token,
		Expire:    expire,
		Signature: hex.EncodeToString(mac.Sum(nil)),
	}, nil
}

var _ ContentServiceInterface = (*ContentService)(nil)
