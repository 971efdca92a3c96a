package tests

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"desi-beats/menu-svc/internal/domain"
	"desi-beats/menu-svc/internal/mocks"
	"desi-beats/menu-svc/internal/service"
	"desi-beats/menu-svc/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func itemsJSON(t *testing.T, lines ...domain.OrderLine) string {
	t.Helper()
	raw, err := json.Marshal(lines)
	require.NoError(t, err)
	return string(raw)
}

func line(id, name string, price float64, qty int) domain.OrderLine {
	return domain.OrderLine{
		MenuItem: domain.OrderLineItem{ID: id, Name: name, Price: price},
		Quantity: qty,
	}
}

func validOrder(t *testing.T) *domain.Order {
	return &domain.Order{
		CustomerName:    "Ayesha Khan",
		CustomerPhone:   "0300 1234567",
		CustomerAddress: "House 12, Street 4, Lahore",
		DeliveryType:    domain.DeliveryTypeDelivery,
		TotalAmount:     3300,
		Items:           itemsJSON(t, line("m1", "Halwa Puri Nashta Deal", 450, 2), line("m2", "BBQ Platter", 2400, 1)),
	}
}

func TestOrderService_Create(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(o *domain.Order)
		setupMocks func(*mocks.OrderRepository, *mocks.OrderPublisher)
		wantField  string
		wantErr    bool
	}{
		{
			name:   "valid order is stored as pending and announced",
			mutate: func(o *domain.Order) {},
			setupMocks: func(repo *mocks.OrderRepository, pub *mocks.OrderPublisher) {
				repo.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
					return o.ID != "" && o.Status == domain.StatusPending && !o.CreatedAt.IsZero()
				})).Return(nil).Once()
				pub.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventOrderCreated && e.TotalAmount == 3300
				})).Return(nil).Once()
			},
		},
		{
			name:   "supplied status is kept",
			mutate: func(o *domain.Order) { o.Status = domain.StatusPreparing },
			setupMocks: func(repo *mocks.OrderRepository, pub *mocks.OrderPublisher) {
				repo.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
					return o.Status == domain.StatusPreparing
				})).Return(nil).Once()
				pub.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Status == domain.StatusPreparing
				})).Return(nil).Once()
			},
		},
		{
			name:   "empty status defaults to pending",
			mutate: func(o *domain.Order) { o.Status = "" },
			setupMocks: func(repo *mocks.OrderRepository, pub *mocks.OrderPublisher) {
				repo.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
					return o.Status == domain.StatusPending
				})).Return(nil).Once()
				pub.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:       "unknown status",
			mutate:     func(o *domain.Order) { o.Status = "lost" },
			setupMocks: func(*mocks.OrderRepository, *mocks.OrderPublisher) {},
			wantErr:    true,
			wantField:  "status",
		},
		{
			name:       "empty phone",
			mutate:     func(o *domain.Order) { o.CustomerPhone = "" },
			setupMocks: func(*mocks.OrderRepository, *mocks.OrderPublisher) {},
			wantErr:    true,
			wantField:  "customerPhone",
		},
		{
			name:       "phone with too few digits",
			mutate:     func(o *domain.Order) { o.CustomerPhone = "0300-12" },
			setupMocks: func(*mocks.OrderRepository, *mocks.OrderPublisher) {},
			wantErr:    true,
			wantField:  "customerPhone",
		},
		{
			name:       "one letter name",
			mutate:     func(o *domain.Order) { o.CustomerName = "A" },
			setupMocks: func(*mocks.OrderRepository, *mocks.OrderPublisher) {},
			wantErr:    true,
			wantField:  "customerName",
		},
		{
			name:       "unknown delivery type",
			mutate:     func(o *domain.Order) { o.DeliveryType = "drone" },
			setupMocks: func(*mocks.OrderRepository, *mocks.OrderPublisher) {},
			wantErr:    true,
			wantField:  "deliveryType",
		},
		{
			name:       "empty items list",
			mutate:     func(o *domain.Order) { o.Items = "[]" },
			setupMocks: func(*mocks.OrderRepository, *mocks.OrderPublisher) {},
			wantErr:    true,
			wantField:  "items",
		},
		{
			name:       "items not JSON",
			mutate:     func(o *domain.Order) { o.Items = "two karahis" },
			setupMocks: func(*mocks.OrderRepository, *mocks.OrderPublisher) {},
			wantErr:    true,
			wantField:  "items",
		},
		{
			name:       "zero quantity line",
			mutate:     func(o *domain.Order) { o.Items = itemsJSON(t, line("m1", "Naan", 50, 0)); o.TotalAmount = 50 },
			setupMocks: func(*mocks.OrderRepository, *mocks.OrderPublisher) {},
			wantErr:    true,
			wantField:  "items[0].quantity",
		},
		{
			name:       "total does not match items",
			mutate:     func(o *domain.Order) { o.TotalAmount = 1 },
			setupMocks: func(*mocks.OrderRepository, *mocks.OrderPublisher) {},
			wantErr:    true,
			wantField:  "totalAmount",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			pub := mocks.NewOrderPublisher(t)
			testCase.setupMocks(repo, pub)
			svc := service.NewOrderService(repo, pub, nil)

			order := validOrder(t)
			testCase.mutate(order)
			err := svc.Create(context.Background(), order)

			if !testCase.wantErr {
				require.NoError(t, err)
				assert.Equal(t, domain.StatusPending, order.Status)
				return
			}
			require.Error(t, err)
			var verr *service.ValidationError
			require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
			fields := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
			}
			assert.Contains(t, fields, testCase.wantField)
			repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_CreateSurvivesPublishFailure(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	pub := mocks.NewOrderPublisher(t)
	repo.On("CreateOrder", mock.Anything, mock.Anything).Return(nil).Once()
	pub.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	svc := service.NewOrderService(repo, pub, nil)
	assert.NoError(t, svc.Create(context.Background(), validOrder(t)))
}

func TestOrderService_CreateStoreFailure(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	repo.On("CreateOrder", mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	svc := service.NewOrderService(repo, nil, nil)
	err := svc.Create(context.Background(), validOrder(t))
	require.Error(t, err)
	assert.False(t, service.IsValidation(err))
}

func TestOrderService_EmptyPhoneLeavesStoreEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := service.NewOrderService(store, nil, nil)

	order := validOrder(t)
	order.CustomerPhone = ""
	err := svc.Create(context.Background(), order)
	require.Error(t, err)
	assert.True(t, service.IsValidation(err))

	orders, err := store.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_UpdateStatusAnyToAny(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := service.NewOrderService(store, nil, nil)

	for _, from := range domain.Statuses {
		for _, to := range domain.Statuses {
			order := validOrder(t)
			require.NoError(t, svc.Create(ctx, order))
			if from != domain.StatusPending {
				_, err := svc.UpdateStatus(ctx, order.ID, from)
				require.NoError(t, err)
			}

			updated, err := svc.UpdateStatus(ctx, order.ID, to)
			require.NoError(t, err, "%s -> %s", from, to)
			assert.Equal(t, to, updated.Status)
			assert.Equal(t, order.Items, updated.Items)
			assert.Equal(t, order.TotalAmount, updated.TotalAmount)
		}
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.Status
		setupMocks func(*mocks.OrderRepository, *mocks.OrderPublisher)
		wantErr    error
		validation bool
	}{
		{
			name:   "pending straight to completed",
			status: domain.StatusCompleted,
			setupMocks: func(repo *mocks.OrderRepository, pub *mocks.OrderPublisher) {
				repo.On("GetOrder", mock.Anything, "o1").Return(&domain.Order{ID: "o1", Status: domain.StatusPending}, nil).Once()
				repo.On("UpdateOrderStatus", mock.Anything, "o1", domain.StatusCompleted).
					Return(&domain.Order{ID: "o1", Status: domain.StatusCompleted}, nil).Once()
				pub.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventOrderStatusChanged &&
						e.PreviousStatus == domain.StatusPending && e.Status == domain.StatusCompleted
				})).Return(nil).Once()
			},
		},
		{
			name:       "unknown status",
			status:     "delivered",
			setupMocks: func(*mocks.OrderRepository, *mocks.OrderPublisher) {},
			validation: true,
		},
		{
			name:   "missing order",
			status: domain.StatusReady,
			setupMocks: func(repo *mocks.OrderRepository, pub *mocks.OrderPublisher) {
				repo.On("GetOrder", mock.Anything, "o1").Return(nil, domain.ErrNotFound).Once()
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			pub := mocks.NewOrderPublisher(t)
			testCase.setupMocks(repo, pub)
			svc := service.NewOrderService(repo, pub, nil)

			_, err := svc.UpdateStatus(context.Background(), "o1", testCase.status)
			switch {
			case testCase.validation:
				assert.True(t, service.IsValidation(err))
			case testCase.wantErr != nil:
				assert.ErrorIs(t, err, testCase.wantErr)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderService_SnapshotIgnoresLaterPriceChange(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	categories := service.NewCategoryService(store)
	items := service.NewMenuItemService(store, store, nil)
	orders := service.NewOrderService(store, nil, nil)

	cat := &domain.Category{Name: "Karahi", Slug: "karahi", Order: 4}
	require.NoError(t, categories.Create(ctx, cat))
	karahi := &domain.MenuItem{CategoryID: cat.ID, Name: "Chicken Karahi Half", Price: 1150, Available: true}
	require.NoError(t, items.Create(ctx, karahi))

	order := validOrder(t)
	order.Items = itemsJSON(t, line(karahi.ID, karahi.Name, karahi.Price, 2))
	order.TotalAmount = 2300
	require.NoError(t, orders.Create(ctx, order))

	before, err := orders.Get(ctx, order.ID)
	require.NoError(t, err)

	newPrice := 1290.0
	_, err = items.Update(ctx, karahi.ID, domain.MenuItemPatch{Price: &newPrice})
	require.NoError(t, err)

	after, err := orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Items, after.Items)
	assert.Equal(t, 2300.0, after.TotalAmount)
}

func TestOrderService_Delete(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	repo.On("DeleteOrder", mock.Anything, "gone").Return(int64(0), nil).Once()
	repo.On("DeleteOrder", mock.Anything, "o1").Return(int64(1), nil).Once()
	svc := service.NewOrderService(repo, nil, nil)

	assert.ErrorIs(t, svc.Delete(context.Background(), "gone"), domain.ErrNotFound)
	assert.NoError(t, svc.Delete(context.Background(), "o1"))
}

func TestOrderService_QRCode(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	qr := mocks.NewQRGenerator(t)
	repo.On("GetOrder", mock.Anything, "o1").Return(&domain.Order{ID: "o1"}, nil).Once()
	qr.On("Generate", "o1").Return([]byte("png"), nil).Once()

	svc := service.NewOrderService(repo, nil, qr)
	data, err := svc.QRCode(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
}

func TestOrderService_Receipt(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	order := validOrder(t)
	order.ID = "o1"
	order.Status = domain.StatusPending
	order.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.On("GetOrder", mock.Anything, "o1").Return(order, nil).Once()

	svc := service.NewOrderService(repo, nil, service.DefaultQRGenerator{BaseURL: "http://localhost:5000"})
	pdf, err := svc.Receipt(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestDefaultQRGenerator(t *testing.T) {
	g := service.DefaultQRGenerator{BaseURL: "https://desibeats.example"}
	assert.Equal(t, "https://desibeats.example/order-confirmation/abc", g.ConfirmationURL("abc"))

	data, err := g.Generate("abc")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestCategoryService_Create(t *testing.T) {
	tests := []struct {
		name      string
		category  domain.Category
		setupMock func(*mocks.CategoryRepository)
		check     func(t *testing.T, err error)
	}{
		{
			name:     "new slug",
			category: domain.Category{Name: "Karahi", Slug: "karahi", Order: 4},
			setupMock: func(m *mocks.CategoryRepository) {
				m.On("GetCategoryBySlug", mock.Anything, "karahi").Return(nil, domain.ErrNotFound).Once()
				m.On("CreateCategory", mock.Anything, mock.AnythingOfType("*domain.Category")).Return(nil).Once()
			},
			check: func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name:     "taken slug",
			category: domain.Category{Name: "Karahi", Slug: "karahi"},
			setupMock: func(m *mocks.CategoryRepository) {
				m.On("GetCategoryBySlug", mock.Anything, "karahi").Return(&domain.Category{ID: "c9", Slug: "karahi"}, nil).Once()
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, domain.ErrConflict) },
		},
		{
			name:      "slug with spaces",
			category:  domain.Category{Name: "Hot Wings", Slug: "Hot Wings"},
			setupMock: func(m *mocks.CategoryRepository) {},
			check:     func(t *testing.T, err error) { assert.True(t, service.IsValidation(err)) },
		},
		{
			name:      "missing name",
			category:  domain.Category{Slug: "bbq"},
			setupMock: func(m *mocks.CategoryRepository) {},
			check:     func(t *testing.T, err error) { assert.True(t, service.IsValidation(err)) },
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewCategoryRepository(t)
			testCase.setupMock(repo)
			svc := service.NewCategoryService(repo)

			c := testCase.category
			testCase.check(t, svc.Create(context.Background(), &c))
		})
	}
}

func TestCategoryService_UpdateKeepsUnsetFields(t *testing.T) {
	repo := mocks.NewCategoryRepository(t)
	current := &domain.Category{ID: "c1", Name: "BBQ", Slug: "bbq", Description: "Grilled", Order: 7}
	repo.On("GetCategory", mock.Anything, "c1").Return(current, nil).Once()
	repo.On("UpdateCategory", mock.Anything, mock.MatchedBy(func(c *domain.Category) bool {
		return c.Name == "BBQ" && c.Slug == "bbq" && c.Description == "Grilled" && c.Order == 2
	})).Return(nil).Once()

	order := 2
	updated, err := service.NewCategoryService(repo).Update(context.Background(), "c1", domain.CategoryPatch{Order: &order})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Order)
}

func TestMenuItemService_Create(t *testing.T) {
	tests := []struct {
		name      string
		item      domain.MenuItem
		setupMock func(*mocks.MenuItemRepository, *mocks.CategoryRepository)
		wantValid bool
	}{
		{
			name: "known category",
			item: domain.MenuItem{CategoryID: "c1", Name: "Garlic Naan", Price: 80, Available: true},
			setupMock: func(items *mocks.MenuItemRepository, cats *mocks.CategoryRepository) {
				cats.On("GetCategory", mock.Anything, "c1").Return(&domain.Category{ID: "c1"}, nil).Once()
				items.On("CreateMenuItem", mock.Anything, mock.AnythingOfType("*domain.MenuItem")).Return(nil).Once()
			},
			wantValid: true,
		},
		{
			name: "unknown category",
			item: domain.MenuItem{CategoryID: "nope", Name: "Garlic Naan", Price: 80},
			setupMock: func(items *mocks.MenuItemRepository, cats *mocks.CategoryRepository) {
				cats.On("GetCategory", mock.Anything, "nope").Return(nil, domain.ErrNotFound).Once()
			},
		},
		{
			name:      "zero price",
			item:      domain.MenuItem{CategoryID: "c1", Name: "Garlic Naan", Price: 0},
			setupMock: func(*mocks.MenuItemRepository, *mocks.CategoryRepository) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			items := mocks.NewMenuItemRepository(t)
			cats := mocks.NewCategoryRepository(t)
			testCase.setupMock(items, cats)
			svc := service.NewMenuItemService(items, cats, nil)

			item := testCase.item
			err := svc.Create(context.Background(), &item)
			if testCase.wantValid {
				assert.NoError(t, err)
			} else {
				assert.True(t, service.IsValidation(err), "got %v", err)
			}
		})
	}
}

func TestMenuItemService_UploadImage(t *testing.T) {
	items := mocks.NewMenuItemRepository(t)
	images := mocks.NewImageStore(t)
	items.On("GetMenuItem", mock.Anything, "m1").Return(&domain.MenuItem{ID: "m1", Name: "Lassi"}, nil).Once()
	images.On("SaveImage", mock.Anything, "menu_item_m1.png", mock.Anything).Return("/uploads/menu_item_m1.png", nil).Once()
	items.On("UpdateMenuItem", mock.Anything, mock.MatchedBy(func(m *domain.MenuItem) bool {
		return m.Image == "/uploads/menu_item_m1.png"
	})).Return(nil).Once()

	svc := service.NewMenuItemService(items, nil, images)
	item, err := svc.UploadImage(context.Background(), "m1", "Lassi.PNG", nil)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/menu_item_m1.png", item.Image)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name      string
		creds     service.AdminCredentials
		username  string
		password  string
		setupMock func(*mocks.SessionStore)
		wantErr   error
	}{
		{
			name:     "plain password match",
			creds:    service.AdminCredentials{Username: "admin", Password: "admin"},
			username: "admin",
			password: "admin",
			setupMock: func(m *mocks.SessionStore) {
				m.On("Create", mock.Anything, mock.AnythingOfType("string"), time.Hour).Return(nil).Once()
			},
		},
		{
			name:      "wrong password",
			creds:     service.AdminCredentials{Username: "admin", Password: "admin"},
			username:  "admin",
			password:  "hunter2",
			setupMock: func(m *mocks.SessionStore) {},
			wantErr:   service.ErrInvalidCredentials,
		},
		{
			name:      "wrong username",
			creds:     service.AdminCredentials{Username: "admin", Password: "admin"},
			username:  "root",
			password:  "admin",
			setupMock: func(m *mocks.SessionStore) {},
			wantErr:   service.ErrInvalidCredentials,
		},
		{
			name:     "bcrypt hash match",
			creds:    service.AdminCredentials{Username: "admin", Password: "ignored", PasswordHash: string(hash)},
			username: "admin",
			password: "s3cret",
			setupMock: func(m *mocks.SessionStore) {
				m.On("Create", mock.Anything, mock.AnythingOfType("string"), time.Hour).Return(nil).Once()
			},
		},
		{
			name:      "bcrypt hash ignores plain password",
			creds:     service.AdminCredentials{Username: "admin", Password: "ignored", PasswordHash: string(hash)},
			username:  "admin",
			password:  "ignored",
			setupMock: func(m *mocks.SessionStore) {},
			wantErr:   service.ErrInvalidCredentials,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			sessions := mocks.NewSessionStore(t)
			testCase.setupMock(sessions)
			svc := service.NewAuthService(testCase.creds, sessions, time.Hour)

			sid, err := svc.Login(context.Background(), testCase.username, testCase.password)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Empty(t, sid)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, sid)
		})
	}
}

func TestAuthService_IsAdmin(t *testing.T) {
	sessions := mocks.NewSessionStore(t)
	sessions.On("Exists", mock.Anything, "live").Return(true, nil).Once()
	sessions.On("Exists", mock.Anything, "broken").Return(false, errors.New("redis timeout")).Once()
	svc := service.NewAuthService(service.AdminCredentials{Username: "admin", Password: "admin"}, sessions, time.Hour)

	assert.True(t, svc.IsAdmin(context.Background(), "live"))
	assert.False(t, svc.IsAdmin(context.Background(), "broken"))
	assert.False(t, svc.IsAdmin(context.Background(), ""))
}

func TestDashboardService_Stats(t *testing.T) {
	cats := mocks.NewCategoryRepository(t)
	items := mocks.NewMenuItemRepository(t)
	orders := mocks.NewOrderRepository(t)
	stats := mocks.NewStatsReader(t)

	cats.On("ListCategories", mock.Anything).Return([]domain.Category{{ID: "c1"}, {ID: "c2"}}, nil).Once()
	items.On("ListMenuItems", mock.Anything, domain.MenuItemFilter{}).Return([]domain.MenuItem{{ID: "m1"}}, nil).Once()
	orders.On("ListOrders", mock.Anything).Return([]domain.Order{
		{ID: "o1", Status: domain.StatusPending},
		{ID: "o2", Status: domain.StatusReady},
		{ID: "o3", Status: domain.StatusPending},
	}, nil).Once()
	stats.On("DailyStats", mock.Anything, mock.AnythingOfType("string")).Return(&domain.DailyStats{Orders: 3, Revenue: 5400}, nil).Once()

	got, err := service.NewDashboardService(cats, items, orders, stats).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, got.Categories)
	assert.Equal(t, 1, got.MenuItems)
	assert.Equal(t, 3, got.Orders)
	assert.Equal(t, 2, got.PendingOrders)
	require.NotNil(t, got.Today)
	assert.Equal(t, 5400.0, got.Today.Revenue)
}

func TestContentService_ImageKitAuth(t *testing.T) {
	svc := service.NewContentService("", "private_key")

	auth, err := svc.ImageKitAuth("tok", 1700000000)
	require.NoError(t, err)

	mac := hmac.New(sha1.New, []byte("private_key"))
	mac.Write([]byte("tok1700000000"))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), auth.Signature)
	assert.Equal(t, int64(1700000000), auth.Expire)

	generated, err := svc.ImageKitAuth("", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, generated.Token)
	assert.Greater(t, generated.Expire, time.Now().Unix())

	_, err = service.NewContentService("", "").ImageKitAuth("tok", 1)
	assert.ErrorIs(t, err, service.ErrImageKitNotConfigured)
}

func TestContentService_HeroSlider(t *testing.T) {
	dir := t.TempDir()

	missing := service.NewContentService(filepath.Join(dir, "missing.json"), "")
	assert.Len(t, missing.HeroSlider().Slides, 3)

	path := filepath.Join(dir, "hero.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"slides":[{"id":9,"title":"Lassi Week","price":"180"}]}`), 0o644))
	custom := service.NewContentService(path, "")
	slides := custom.HeroSlider().Slides
	require.Len(t, slides, 1)
	assert.Equal(t, "Lassi Week", slides[0].Title)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{`), 0o644))
	assert.Equal(t, service.DefaultHeroSlider(), service.NewContentService(broken, "").HeroSlider())
}
