package alerts

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-tracker-api/internal/domain/entity"
	"github.com/jhoicas/stock-tracker-api/internal/domain/repository"
)

// expiringSoonDays ventana de aviso previo al vencimiento.
const expiringSoonDays = 7

// Reconciler mantiene las alertas automáticas ("Low Stock", "Expiry") como
// función pura del estado actual del item: crea la que falta, borra la que
// sobra y nunca toca una existente (el mensaje no se refresca aunque la
// cantidad o los días restantes cambien).
//
// La reconciliación es lookup-then-create/delete, así que se serializa por
// item con un mutex propio; el almacén no la protege.
type Reconciler struct {
	alerts repository.AlertRepository
	locks  sync.Map // itemID -> *sync.Mutex
}

// NewReconciler construye el motor de alertas.
func NewReconciler(alerts repository.AlertRepository) *Reconciler {
	return &Reconciler{alerts: alerts}
}

// Reconcile ejecuta ambas reconciliaciones para el item bajo su lock.
// asOf es la fecha de referencia para el cálculo de vencimiento; el borde
// externo (casos de uso) la fija en time.Now(). Idempotente: dos llamadas
// seguidas sin cambio de estado no producen escrituras adicionales.
//
// Un error aquí no revierte la mutación que disparó la reconciliación: la
// escritura primaria ya está confirmada y los llamadores solo registran el
// fallo.
func (r *Reconciler) Reconcile(item *entity.Item, asOf time.Time) error {
	mu := r.lockFor(item.ID)
	mu.Lock()
	defer mu.Unlock()

	if err := r.reconcileLowStock(item); err != nil {
		return fmt.Errorf("reconciliar low stock: %w", err)
	}
	if err := r.reconcileExpiry(item, asOf); err != nil {
		return fmt.Errorf("reconciliar expiry: %w", err)
	}
	return nil
}

// reconcileLowStock asegura a lo sumo una alerta "Low Stock" por item,
// existente exactamente cuando quantity <= lowStockThreshold.
func (r *Reconciler) reconcileLowStock(item *entity.Item) error {
	existing, err := r.alerts.GetByItemAndType(item.ID, entity.AlertTypeLowStock)
	if err != nil {
		return err
	}

	if item.Quantity <= item.LowStockThreshold {
		if existing != nil {
			return nil
		}
		itemID := item.ID
		return r.alerts.Create(&entity.Alert{
			ID:      uuid.New().String(),
			Type:    entity.AlertTypeLowStock,
			Title:   fmt.Sprintf("Low stock for %s", item.ItemName),
			Message: fmt.Sprintf("Only %d left in stock.", item.Quantity),
			ItemID:  &itemID,
		})
	}

	if existing != nil {
		return r.alerts.Delete(existing.ID)
	}
	return nil
}

// reconcileExpiry evalúa tres bandas excluyentes según los días hasta el
// vencimiento: vencido (<= 0), por vencer (<= 7) y vigente (> 7). Sin
// expiryDate no hace nada, ni siquiera borra una alerta existente.
func (r *Reconciler) reconcileExpiry(item *entity.Item, asOf time.Time) error {
	if item.ExpiryDate == nil {
		return nil
	}

	days := daysUntil(*item.ExpiryDate, asOf)
	existing, err := r.alerts.GetByItemAndType(item.ID, entity.AlertTypeExpiry)
	if err != nil {
		return err
	}

	switch {
	case days <= 0:
		if existing != nil {
			return nil
		}
		return r.createExpiry(item,
			fmt.Sprintf("%s expired!", item.ItemName),
			fmt.Sprintf("%s expired on %s.", item.ItemName, item.ExpiryDate.Format("2006-01-02")),
		)
	case days <= expiringSoonDays:
		if existing != nil {
			return nil
		}
		return r.createExpiry(item,
			fmt.Sprintf("%s expiring soon!", item.ItemName),
			fmt.Sprintf("%s will expire in %d days.", item.ItemName, days),
		)
	default:
		if existing != nil {
			return r.alerts.Delete(existing.ID)
		}
		return nil
	}
}

func (r *Reconciler) createExpiry(item *entity.Item, title, message string) error {
	itemID := item.ID
	return r.alerts.Create(&entity.Alert{
		ID:      uuid.New().String(),
		Type:    entity.AlertTypeExpiry,
		Title:   title,
		Message: message,
		ItemID:  &itemID,
	})
}

// lockFor devuelve el mutex del item, creándolo si es la primera vez.
func (r *Reconciler) lockFor(itemID string) *sync.Mutex {
	mu, _ := r.locks.LoadOrStore(itemID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// daysUntil calcula días calendario completos entre asOf y expiry (puede ser
// negativo). Ambas fechas se truncan a medianoche para ignorar la hora.
func daysUntil(expiry, asOf time.Time) int {
	e := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)
	a := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(a).Hours() / 24)
}
