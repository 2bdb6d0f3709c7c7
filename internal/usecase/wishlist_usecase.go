package usecase

import (
	"encoding/json"
	"sync"

	"mediazone/internal/domain/entity"
	"mediazone/internal/domain/repository"
	"mediazone/internal/domain/service"
	"mediazone/pkg/logger"
)

const wishlistStorageKey = "wishlist"

// Wishlist is the storefront wishlist container: a set of product snapshots
// keyed by product id, persisted like the cart. Membership changes emit a
// transient notice through the Notifier, in the shopper's language.
type Wishlist struct {
	mu       sync.Mutex
	items    []entity.Product
	storage  repository.ClientStorage
	notifier service.Notifier
	language string
}

func NewWishlist(storage repository.ClientStorage, notifier service.Notifier, language string) *Wishlist {
	wishlist := &Wishlist{
		storage:  storage,
		notifier: notifier,
		language: language,
	}

	if data, ok := storage.Get(wishlistStorageKey); ok {
		if err := json.Unmarshal(data, &wishlist.items); err != nil {
			logger.Error("failed to parse stored wishlist: %v", err)
			wishlist.items = nil
		}
	}

	return wishlist
}

// Add appends the product unless it is already a member, in which case the
// shopper gets an "already in wishlist" notice and nothing changes.
func (w *Wishlist) Add(product entity.Product) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.containsLocked(product.ID) {
		w.notifier.Info(w.message("المنتج موجود بالفعل في المفضلة", "Product already in wishlist"))
		return
	}

	w.items = append(w.items, product)
	w.persist()
	w.notifier.Success(w.message("تمت الإضافة للمفضلة", "Added to wishlist"))
}

func (w *Wishlist) Remove(productID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, item := range w.items {
		if item.ID == productID {
			w.items = append(w.items[:i], w.items[i+1:]...)
			break
		}
	}
	w.persist()
	w.notifier.Info(w.message("تم الحذف من المفضلة", "Removed from wishlist"))
}

func (w *Wishlist) Contains(productID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.containsLocked(productID)
}

func (w *Wishlist) Items() []entity.Product {
	w.mu.Lock()
	defer w.mu.Unlock()

	items := make([]entity.Product, len(w.items))
	copy(items, w.items)
	return items
}

func (w *Wishlist) containsLocked(productID string) bool {
	for _, item := range w.items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

func (w *Wishlist) message(arabic, english string) string {
	if w.language == "ar" {
		return arabic
	}
	return english
}

func (w *Wishlist) persist() {
	data, err := json.Marshal(w.items)
	if err != nil {
		logger.Error("failed to encode wishlist: %v", err)
		return
	}
	w.storage.Set(wishlistStorageKey, data)
}
