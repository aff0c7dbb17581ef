package server

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finsight/finsight"
	"github.com/finsight/finsight/date"
	"github.com/finsight/finsight/store"
)

// withSession resolves the caller's session or writes a 500 and returns nil.
func (s *Server) withSession(c *gin.Context) *session {
	sess, err := s.session(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load data"})
		return nil
	}
	return sess
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, finsight.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	badRequest(c, err)
}

// Transactions.

func (s *Server) listTransactions(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"items": sess.book.Transactions})
}

func (s *Server) addTransaction(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	var t finsight.Transaction
	if err := c.ShouldBindJSON(&t); err != nil {
		badRequest(c, err)
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	created, err := sess.book.AddTransaction(t)
	if err != nil {
		writeError(c, err)
		return
	}
	sess.syncer.QueueCollection(store.Transactions, sess.book.Transactions)
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateTransaction(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	var t finsight.Transaction
	if err := c.ShouldBindJSON(&t); err != nil {
		badRequest(c, err)
		return
	}
	t.ID = c.Param("id")
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.book.UpdateTransaction(t); err != nil {
		writeError(c, err)
		return
	}
	sess.syncer.QueueCollection(store.Transactions, sess.book.Transactions)
	c.JSON(http.StatusOK, t)
}

func (s *Server) deleteTransaction(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.book.DeleteTransaction(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	sess.syncer.QueueCollection(store.Transactions, sess.book.Transactions)
	c.Status(http.StatusNoContent)
}

func (s *Server) replaceTransactions(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	var items []finsight.Transaction
	if err := c.ShouldBindJSON(&items); err != nil {
		badRequest(c, err)
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.book.SetTransactions(items); err != nil {
		writeError(c, err)
		return
	}
	sess.syncer.QueueCollection(store.Transactions, sess.book.Transactions)
	c.JSON(http.StatusOK, gin.H{"items": sess.book.Transactions})
}

// Investments.

func (s *Server) listInvestments(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"items": sess.book.Investments})
}

func (s *Server) addInvestment(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	var inv finsight.Investment
	if err := c.ShouldBindJSON(&inv); err != nil {
		badRequest(c, err)
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	created, err := sess.book.AddInvestment(inv)
	if err != nil {
		writeError(c, err)
		return
	}
	sess.syncer.QueueCollection(store.Investments, sess.book.Investments)
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateInvestment(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	var inv finsight.Investment
	if err := c.ShouldBindJSON(&inv); err != nil {
		badRequest(c, err)
		return
	}
	inv.ID = c.Param("id")
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.book.UpdateInvestment(inv); err != nil {
		writeError(c, err)
		return
	}
	sess.syncer.QueueCollection(store.Investments, sess.book.Investments)
	c.JSON(http.StatusOK, inv)
}

func (s *Server) deleteInvestment(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.book.DeleteInvestment(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	sess.syncer.QueueCollection(store.Investments, sess.book.Investments)
	c.Status(http.StatusNoContent)
}

func (s *Server) replaceInvestments(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	var items []finsight.Investment
	if err := c.ShouldBindJSON(&items); err != nil {
		badRequest(c, err)
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.book.SetInvestments(items); err != nil {
		writeError(c, err)
		return
	}
	sess.syncer.QueueCollection(store.Investments, sess.book.Investments)
	c.JSON(http.StatusOK, gin.H{"items": sess.book.Investments})
}

// Debts.

func (s *Server) listDebts(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"items": sess.book.Debts})
}

func (s *Server) addDebt(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	var d finsight.Debt
	if err := c.ShouldBindJSON(&d); err != nil {
		badRequest(c, err)
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	created, err := sess.book.AddDebt(d)
	if err != nil {
		writeError(c, err)
		return
	}
	sess.syncer.QueueCollection(store.Debts, sess.book.Debts)
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateDebt(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	var d finsight.Debt
	if err := c.ShouldBindJSON(&d); err != nil {
		badRequest(c, err)
		return
	}
	d.ID = c.Param("id")
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.book.UpdateDebt(d); err != nil {
		writeError(c, err)
		return
	}
	sess.syncer.QueueCollection(store.Debts, sess.book.Debts)
	c.JSON(http.StatusOK, d)
}

func (s *Server) deleteDebt(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.book.DeleteDebt(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	sess.syncer.QueueCollection(store.Debts, sess.book.Debts)
	c.Status(http.StatusNoContent)
}

func (s *Server) replaceDebts(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	var items []finsight.Debt
	if err := c.ShouldBindJSON(&items); err != nil {
		badRequest(c, err)
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.book.SetDebts(items); err != nil {
		writeError(c, err)
		return
	}
	sess.syncer.QueueCollection(store.Debts, sess.book.Debts)
	c.JSON(http.StatusOK, gin.H{"items": sess.book.Debts})
}

// Settings.

func (s *Server) getSettings(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	c.JSON(http.StatusOK, sess.book.Settings)
}

func (s *Server) putSettings(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	var settings finsight.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		badRequest(c, err)
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.book.SetSettings(settings)
	sess.syncer.QueueSettings(sess.book.Settings)
	c.JSON(http.StatusOK, sess.book.Settings)
}

// Derived views.

func (s *Server) getSummary(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	view := sess.book.Settings.View
	if q := c.Query("view"); q != "" {
		v, err := finsight.ParseView(q)
		if err != nil {
			badRequest(c, err)
			return
		}
		view = v
	}
	ref := c.Query("ref")
	if ref == "" {
		ref = finsight.CurrentRef(view)
	}
	c.JSON(http.StatusOK, finsight.NewSummary(sess.book, view, ref))
}

func (s *Server) getForecast(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	monthly := finsight.MonthlyTotals(sess.book.Transactions)
	c.JSON(http.StatusOK, gin.H{
		"projection": finsight.NewProjection(monthly),
		"months":     finsight.Forecast(monthly, date.ThisMonth(), 5, 6),
	})
}

func (s *Server) getPayoff(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"items": finsight.EstimatePayoffs(sess.book.Debts)})
}

func (s *Server) getSyncStatus(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": sess.syncer.Status()})
}

// Export and import.

func (s *Server) exportData(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	backup := finsight.Export(sess.book)
	sess.mu.Unlock()
	var buf bytes.Buffer
	if err := finsight.EncodeBackup(&buf, backup); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="finsight-backup.json"`)
	c.Data(http.StatusOK, "application/json", buf.Bytes())
}

func (s *Server) importData(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	backup, err := finsight.DecodeBackup(c.Request.Body)
	if err != nil {
		badRequest(c, err)
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.book.Import(backup)
	s.queueAll(sess)
	c.JSON(http.StatusOK, gin.H{
		"transactions": len(sess.book.Transactions),
		"investments":  len(sess.book.Investments),
		"debts":        len(sess.book.Debts),
	})
}

func (s *Server) resetData(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.book.Import(finsight.SampleBackup())
	s.queueAll(sess)
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

func (s *Server) clearData(c *gin.Context) {
	sess := s.withSession(c)
	if sess == nil {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.book.Clear()
	s.queueAll(sess)
	c.Status(http.StatusNoContent)
}

// queueAll schedules every collection for persistence. The caller holds
// sess.mu or owns the only reference to the session.
func (s *Server) queueAll(sess *session) {
	sess.syncer.QueueCollection(store.Transactions, sess.book.Transactions)
	sess.syncer.QueueCollection(store.Investments, sess.book.Investments)
	sess.syncer.QueueCollection(store.Debts, sess.book.Debts)
}
