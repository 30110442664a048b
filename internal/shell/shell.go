// Package shell описывает контракт хостящей оболочки: фиксированный набор
// страниц и навигацию между ними. Сами страницы оболочка рендерит сама,
// движку важна только возможность перейти на страницу по токену.
package shell

// Page - токен страницы, который принимает оболочка
type Page string

const (
	PageLanding      Page = "landing"
	PageDashboard    Page = "dashboard"
	PageCourses      Page = "courses"
	PageBooking      Page = "booking"
	PageCalendar     Page = "calendar"
	PageQuiz         Page = "quiz"
	PageSubscription Page = "subscription"
	PageProfile      Page = "profile"
)

// Navigator выполняет переход на страницу. Реализуется оболочкой,
// для движка это внешний коллаборатор.
type Navigator interface {
	Navigate(page Page)
}

// NavigatorFunc адаптирует функцию под интерфейс Navigator
type NavigatorFunc func(page Page)

func (f NavigatorFunc) Navigate(page Page) {
	f(page)
}
