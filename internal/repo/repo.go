package repo

import (
	"github.com/wkittisak/shoppay/internal/pg"
	accountrepo "github.com/wkittisak/shoppay/internal/repo/account-repo"
	balancerepo "github.com/wkittisak/shoppay/internal/repo/balance-repo"
	orderrepo "github.com/wkittisak/shoppay/internal/repo/order-repo"
	transferrepo "github.com/wkittisak/shoppay/internal/repo/transfer-repo"
	userrepo "github.com/wkittisak/shoppay/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo     *userrepo.Repository
	OrderRepo    *orderrepo.Repository
	BalanceRepo  *balancerepo.Repository
	AccountRepo  *accountrepo.Repository
	TransferRepo *transferrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		OrderRepo:    orderrepo.New(conn),
		BalanceRepo:  balancerepo.New(conn),
		AccountRepo:  accountrepo.New(conn),
		TransferRepo: transferrepo.New(conn),
	}
}
