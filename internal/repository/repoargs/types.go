package repoargs

type RepositoryName string

const (
	UserRepoName         RepositoryName = "user"
	DepositRepoName      RepositoryName = "deposit"
	WithdrawalRepoName   RepositoryName = "withdrawal"
	ProfitLogRepoName    RepositoryName = "profit_log"
	NotificationRepoName RepositoryName = "notification"
)

// Page параметры постраничной выборки. Zero value означает первую страницу
// с лимитом по умолчанию, нормализация происходит на слое репозитория.
type Page struct {
	Number int
	Limit  int
}

const defaultPageLimit = 20

// Normalized возвращает limit и offset с подставленными значениями по умолчанию.
func (p Page) Normalized() (limit, offset int) {
	limit = p.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	number := p.Number
	if number <= 0 {
		number = 1
	}
	return limit, (number - 1) * limit
}
