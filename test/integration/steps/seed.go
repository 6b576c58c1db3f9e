package steps

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/expenso/backend/internal/integration/persistence/model"
)

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:                 userID,
		Email:              email,
		Name:               name,
		PasswordHash:       hashPassword(password),
		Currency:           "INR",
		EmailNotifications: true,
		DueDateReminders:   true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	return t.issueTokens("test@example.com")
}

// iAmLoggedInAs creates the user if needed and switches the session to them.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if err := t.createUser(email, "SecurePass123!", "Test User "+email); err != nil {
			return err
		}
	} else {
		t.currentUserID = userModel.ID
	}

	return t.issueTokens(email)
}

func (t *testContext) issueTokens(email string) error {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      email,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "expenso",
		"sub":        t.currentUserID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      email,
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "expenso",
		"sub":        t.currentUserID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}
	return t.db.DbConn.Create(refreshTokenModel).Error
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	var user model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    user.ID,
		Email:     email,
		Used:      false,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}
	return t.db.DbConn.Create(resetTokenModel).Error
}

func (t *testContext) anExpiredPasswordResetTokenExists() error {
	t.expiredToken = fmt.Sprintf("expired-reset-token-%s", uuid.New().String())

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.expiredToken,
		UserID:    uuid.New(),
		Email:     "expired@example.com",
		Used:      false,
		ExpiresAt: time.Now().Add(-1 * time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	return t.db.DbConn.Create(resetTokenModel).Error
}

func (t *testContext) theUserHasAnExpense(amount, category, date string) error {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}
	day, err := parseDay(date)
	if err != nil {
		return err
	}

	id := uuid.New()
	t.lastRecordID = id

	now := time.Now().UTC()
	expenseModel := &model.ExpenseModel{
		ID:        id,
		UserID:    t.currentUserID,
		Amount:    amt,
		Category:  category,
		Date:      &day,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(expenseModel).Error
}

func (t *testContext) theUserHasADebt(direction, amount, counterparty string) error {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	id := uuid.New()
	t.lastRecordID = id

	now := time.Now().UTC()
	debtModel := &model.DebtModel{
		ID:               id,
		UserID:           t.currentUserID,
		Direction:        direction,
		Amount:           amt,
		CounterpartyName: counterparty,
		Status:           "Pending",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return t.db.DbConn.Create(debtModel).Error
}

func (t *testContext) theUserHasAnInvestmentPlan(name, monthlyAmount, annualRate string, durationMonths int) error {
	amt, err := decimal.NewFromString(monthlyAmount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", monthlyAmount, err)
	}
	rate, err := strconv.ParseFloat(annualRate, 64)
	if err != nil {
		return fmt.Errorf("invalid rate '%s': %w", annualRate, err)
	}

	id := uuid.New()
	t.lastRecordID = id

	now := time.Now().UTC()
	start := now.AddDate(0, -1, 0)
	planModel := &model.InvestmentPlanModel{
		ID:                      id,
		UserID:                  t.currentUserID,
		Name:                    name,
		MonthlyAmount:           amt,
		AnnualReturnRatePercent: rate,
		DurationMonths:          durationMonths,
		StartDate:               &start,
		Status:                  "Active",
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	return t.db.DbConn.Create(planModel).Error
}

func (t *testContext) theUserHasAStockHolding(name, quantity, buyPrice, currentPrice string) error {
	qty, err := decimal.NewFromString(quantity)
	if err != nil {
		return fmt.Errorf("invalid quantity '%s': %w", quantity, err)
	}
	buy, err := decimal.NewFromString(buyPrice)
	if err != nil {
		return fmt.Errorf("invalid buy price '%s': %w", buyPrice, err)
	}
	current, err := decimal.NewFromString(currentPrice)
	if err != nil {
		return fmt.Errorf("invalid current price '%s': %w", currentPrice, err)
	}

	id := uuid.New()
	t.lastRecordID = id

	now := time.Now().UTC()
	buyDate := now.AddDate(0, -2, 0)
	stockModel := &model.StockHoldingModel{
		ID:           id,
		UserID:       t.currentUserID,
		Name:         name,
		Quantity:     qty,
		BuyPrice:     buy,
		CurrentPrice: current,
		BuyDate:      &buyDate,
		Status:       "Holding",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return t.db.DbConn.Create(stockModel).Error
}

func (t *testContext) theUserHasAPendingLoan(organization, principal, annualRate string) error {
	amt, err := decimal.NewFromString(principal)
	if err != nil {
		return fmt.Errorf("invalid principal '%s': %w", principal, err)
	}
	rate, err := strconv.ParseFloat(annualRate, 64)
	if err != nil {
		return fmt.Errorf("invalid rate '%s': %w", annualRate, err)
	}

	id := uuid.New()
	t.lastRecordID = id

	now := time.Now().UTC()
	loanModel := &model.LoanModel{
		ID:                        id,
		UserID:                    t.currentUserID,
		OrganizationName:          organization,
		Principal:                 amt,
		AnnualInterestRatePercent: rate,
		Status:                    "Pending",
		InterestPaymentHistory:    "[]",
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
	return t.db.DbConn.Create(loanModel).Error
}

func (t *testContext) theUserHasAPendingObligation(kind, obligationType, amount, dueDate string) error {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}
	due, err := parseDay(dueDate)
	if err != nil {
		return err
	}

	id := uuid.New()
	t.lastRecordID = id

	now := time.Now().UTC()
	obligationModel := &model.ObligationModel{
		ID:        id,
		UserID:    t.currentUserID,
		Kind:      kind,
		Type:      obligationType,
		Amount:    amt,
		DueDate:   &due,
		Status:    "Pending",
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(obligationModel).Error
}

func (t *testContext) theUserHasAMonthlyBudget(amount, month string) error {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	now := time.Now().UTC()
	budgetModel := &model.MonthlyBudgetModel{
		ID:        uuid.New(),
		UserID:    t.currentUserID,
		Month:     month,
		Amount:    amt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(budgetModel).Error
}

func parseDay(value string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s': %w", value, err)
	}
	return day, nil
}
