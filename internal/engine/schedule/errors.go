package schedule

import "errors"

// ErrInconsistentSchedule возвращается, когда расписание ссылается на слот,
// которого нет в каталоге для указанного дня
var ErrInconsistentSchedule = errors.New("schedule: inconsistent schedule")
