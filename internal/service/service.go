package service

import (
	"github.com/wkittisak/shoppay/internal/handlers/accounts"
	"github.com/wkittisak/shoppay/internal/handlers/auth"
	"github.com/wkittisak/shoppay/internal/handlers/balance"
	"github.com/wkittisak/shoppay/internal/handlers/orders"
	"github.com/wkittisak/shoppay/internal/handlers/topup"

	pkgauth "github.com/wkittisak/shoppay/pkg/auth"

	"github.com/wkittisak/shoppay/internal/pg"
	"github.com/wkittisak/shoppay/internal/repo"
	accountservice "github.com/wkittisak/shoppay/internal/service/accountservice"
	authservice "github.com/wkittisak/shoppay/internal/service/authservice"
	balanceservice "github.com/wkittisak/shoppay/internal/service/balanceservice"
	orderservice "github.com/wkittisak/shoppay/internal/service/orderservice"
	topupservice "github.com/wkittisak/shoppay/internal/service/topupservice"
)

type Services struct {
	AuthService    auth.Service
	OrderService   orders.Service
	BalanceService balance.Service
	TopupService   topup.Service
	AccountService accounts.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, notifier topupservice.Notifier) *Services {
	balanceService := balanceservice.New(repo.BalanceRepo)
	orderService := orderservice.New(repo.OrderRepo, repo.BalanceRepo, txManager)
	topupService := topupservice.New(repo.AccountRepo, repo.TransferRepo, repo.BalanceRepo, txManager, notifier)
	accountService := accountservice.New(repo.AccountRepo)
	authService := authservice.New(repo.UserRepo, balanceService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		OrderService:   orderService,
		BalanceService: balanceService,
		TopupService:   topupService,
		AccountService: accountService,
	}
}
