// Package demo содержит демонстрационный набор данных: расписание одного дня
// с загрузкой выше 60%, справочники клиентов и тренеров, историю бронирований.
// Набор загружается при старте, когда включен в конфигурации.
package demo

import (
	"time"

	"github.com/tennispark/TP-AdminService/internal/domain"
	"github.com/tennispark/TP-AdminService/pkg/ptr"
	"github.com/tennispark/TP-AdminService/pkg/types"
)

// Date дата, на которую записано демонстрационное расписание
var Date = time.Date(2025, time.July, 3, 0, 0, 0, 0, time.UTC)

// courtBooking строит запись бронирования корта
func courtBooking(id string, courtID int64, t types.TimeString, status domain.SlotStatus, client, phone string, price, duration int) *domain.Slot {
	return &domain.Slot{
		ID:          id,
		CourtID:     courtID,
		Date:        Date,
		Time:        t,
		Status:      status,
		ClientName:  ptr.Ptr(client),
		ClientPhone: ptr.Ptr(phone),
		Price:       price,
		Duration:    duration,
	}
}

// trainingBooking строит запись тренировки с тренером
func trainingBooking(id string, courtID int64, t types.TimeString, status domain.SlotStatus, trainer, client, phone string, price, duration int) *domain.Slot {
	s := courtBooking(id, courtID, t, status, client, phone, price, duration)
	s.TrainerName = ptr.Ptr(trainer)
	return s
}

// trainerReservation строит запись резерва тренера (без клиента и цены)
func trainerReservation(id string, courtID int64, t types.TimeString, trainer string, duration int) *domain.Slot {
	return &domain.Slot{
		ID:          id,
		CourtID:     courtID,
		Date:        Date,
		Time:        t,
		Status:      domain.StatusTrainerReserved,
		TrainerName: ptr.Ptr(trainer),
		Duration:    duration,
	}
}

// Slots возвращает записи расписания на демо-дату
func Slots() []*domain.Slot {
	return []*domain.Slot{
		// Утро (08:00-12:00), загрузка 40-50%
		courtBooking("demo_001", 1, "08:00", domain.StatusCourtPaid, "Анна Петрова", "+7 916 123-45-67", 1200, 60),
		courtBooking("demo_002", 1, "08:30", domain.StatusCourtPaid, "Анна Петрова", "+7 916 123-45-67", 0, 60),
		trainingBooking("demo_003", 2, "09:00", domain.StatusTrainingPaid, "Дмитрий Козлов", "Михаил Иванов", "+7 903 987-65-43", 2500, 90),
		trainingBooking("demo_004", 2, "09:30", domain.StatusTrainingPaid, "Дмитрий Козлов", "Михаил Иванов", "+7 903 987-65-43", 0, 90),
		trainingBooking("demo_005", 2, "10:00", domain.StatusTrainingPaid, "Дмитрий Козлов", "Михаил Иванов", "+7 903 987-65-43", 0, 90),
		courtBooking("demo_006", 3, "10:30", domain.StatusCourtUnpaid, "Елена Смирнова", "+7 925 456-78-90", 1440, 60),
		courtBooking("demo_007", 3, "11:00", domain.StatusCourtUnpaid, "Елена Смирнова", "+7 925 456-78-90", 0, 60),
		trainerReservation("demo_008", 4, "11:30", "Анна Петрова", 60),

		// День (12:00-18:00), загрузка 60-70%
		courtBooking("demo_009", 1, "12:00", domain.StatusCourtPaid, "Игорь Соколов", "+7 921 456-78-90", 1200, 90),
		courtBooking("demo_010", 1, "12:30", domain.StatusCourtPaid, "Игорь Соколов", "+7 921 456-78-90", 0, 90),
		courtBooking("demo_011", 1, "13:00", domain.StatusCourtPaid, "Игорь Соколов", "+7 921 456-78-90", 0, 90),
		trainingBooking("demo_012", 2, "13:30", domain.StatusTrainingUnpaid, "Елена Сидорова", "Мария Федорова", "+7 915 789-01-23", 2200, 60),
		trainingBooking("demo_013", 2, "14:00", domain.StatusTrainingUnpaid, "Елена Сидорова", "Мария Федорова", "+7 915 789-01-23", 0, 60),
		courtBooking("demo_014", 3, "14:30", domain.StatusCourtPaid, "Сергей Николаев", "+7 926 678-90-12", 1440, 60),
		courtBooking("demo_015", 3, "15:00", domain.StatusCourtPaid, "Сергей Николаев", "+7 926 678-90-12", 0, 60),
		trainingBooking("demo_016", 4, "15:30", domain.StatusTrainingPaid, "Михаил Иванов", "Татьяна Морозова", "+7 918 345-67-89", 2800, 90),
		trainingBooking("demo_017", 4, "16:00", domain.StatusTrainingPaid, "Михаил Иванов", "Татьяна Морозова", "+7 918 345-67-89", 0, 90),
		trainingBooking("demo_018", 4, "16:30", domain.StatusTrainingPaid, "Михаил Иванов", "Татьяна Морозова", "+7 918 345-67-89", 0, 90),
		courtBooking("demo_019", 5, "17:00", domain.StatusCourtUnpaid, "Александр Волков", "+7 909 234-56-78", 960, 60),
		courtBooking("demo_020", 5, "17:30", domain.StatusCourtUnpaid, "Александр Волков", "+7 909 234-56-78", 0, 60),

		// Вечерний пик (18:00-22:00), загрузка 80-90%
		trainingBooking("demo_021", 1, "18:00", domain.StatusTrainingPaid, "Дмитрий Козлов", "Виктор Петров", "+7 916 111-22-33", 3000, 120),
		trainingBooking("demo_022", 1, "18:30", domain.StatusTrainingPaid, "Дмитрий Козлов", "Виктор Петров", "+7 916 111-22-33", 0, 120),
		trainingBooking("demo_023", 1, "19:00", domain.StatusTrainingPaid, "Дмитрий Козлов", "Виктор Петров", "+7 916 111-22-33", 0, 120),
		trainingBooking("demo_024", 1, "19:30", domain.StatusTrainingPaid, "Дмитрий Козлов", "Виктор Петров", "+7 916 111-22-33", 0, 120),
		courtBooking("demo_025", 2, "18:30", domain.StatusCourtPaid, "Наталья Кузнецова", "+7 925 444-55-66", 1560, 90),
		courtBooking("demo_026", 2, "19:00", domain.StatusCourtPaid, "Наталья Кузнецова", "+7 925 444-55-66", 0, 90),
		courtBooking("demo_027", 2, "19:30", domain.StatusCourtPaid, "Наталья Кузнецова", "+7 925 444-55-66", 0, 90),
		trainingBooking("demo_028", 3, "18:00", domain.StatusTrainingUnpaid, "Анна Петрова", "Олег Смирнов", "+7 917 777-88-99", 2500, 60),
		trainingBooking("demo_029", 3, "18:30", domain.StatusTrainingUnpaid, "Анна Петрова", "Олег Смирнов", "+7 917 777-88-99", 0, 60),
		courtBooking("demo_030", 3, "19:30", domain.StatusCourtPaid, "Ирина Васильева", "+7 903 333-44-55", 1872, 60),
		courtBooking("demo_031", 3, "20:00", domain.StatusCourtPaid, "Ирина Васильева", "+7 903 333-44-55", 0, 60),
		trainerReservation("demo_032", 4, "19:00", "Елена Сидорова", 90),
		trainerReservation("demo_033", 4, "19:30", "Елена Сидорова", 90),
		trainerReservation("demo_034", 4, "20:00", "Елена Сидорова", 90),
		courtBooking("demo_035", 5, "18:30", domain.StatusCourtUnpaid, "Павел Морозов", "+7 926 666-77-88", 1248, 90),
		courtBooking("demo_036", 5, "19:00", domain.StatusCourtUnpaid, "Павел Морозов", "+7 926 666-77-88", 0, 90),
		courtBooking("demo_037", 5, "19:30", domain.StatusCourtUnpaid, "Павел Морозов", "+7 926 666-77-88", 0, 90),
		trainingBooking("demo_038", 5, "20:30", domain.StatusTrainingPaid, "Михаил Иванов", "Светлана Попова", "+7 915 222-33-44", 2800, 60),
		trainingBooking("demo_039", 5, "21:00", domain.StatusTrainingPaid, "Михаил Иванов", "Светлана Попова", "+7 915 222-33-44", 0, 60),

		// Дополнительные бронирования для реалистичного распределения
		courtBooking("demo_040", 2, "20:30", domain.StatusCourtPaid, "Андрей Козлов", "+7 917 888-99-00", 1248, 60),
		courtBooking("demo_041", 2, "21:00", domain.StatusCourtPaid, "Андрей Козлов", "+7 917 888-99-00", 0, 60),
		courtBooking("demo_042", 1, "20:30", domain.StatusCourtUnpaid, "Юлия Сидорова", "+7 925 555-66-77", 1560, 60),
		courtBooking("demo_043", 1, "21:00", domain.StatusCourtUnpaid, "Юлия Сидорова", "+7 925 555-66-77", 0, 60),
	}
}

// Clients возвращает демонстрационный справочник клиентов
func Clients() []*domain.Client {
	return []*domain.Client{
		{
			ID:               1,
			Name:             "Анна Петрова",
			Phone:            "+7 916 123-45-67",
			Email:            ptr.Ptr("anna.petrova@email.ru"),
			TotalBookings:    24,
			TotalSpent:       48600,
			Status:           domain.ClientVIP,
			LastBooking:      ptr.Ptr(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)),
			RegistrationDate: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:               2,
			Name:             "Михаил Иванов",
			Phone:            "+7 903 987-65-43",
			Email:            ptr.Ptr("mikhail.ivanov@email.ru"),
			TotalBookings:    12,
			TotalSpent:       18900,
			Status:           domain.ClientActive,
			LastBooking:      ptr.Ptr(time.Date(2025, time.June, 28, 0, 0, 0, 0, time.UTC)),
			RegistrationDate: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:               3,
			Name:             "Елена Смирнова",
			Phone:            "+7 925 456-78-90",
			Email:            ptr.Ptr("elena.smirnova@email.ru"),
			TotalBookings:    8,
			TotalSpent:       12400,
			Status:           domain.ClientActive,
			LastBooking:      ptr.Ptr(time.Date(2025, time.June, 25, 0, 0, 0, 0, time.UTC)),
			RegistrationDate: time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:               4,
			Name:             "Дмитрий Козлов",
			Phone:            "+7 917 234-56-78",
			Email:            ptr.Ptr("dmitry.kozlov@email.ru"),
			TotalBookings:    45,
			TotalSpent:       89200,
			Status:           domain.ClientVIP,
			LastBooking:      ptr.Ptr(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)),
			RegistrationDate: time.Date(2023, time.August, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:               5,
			Name:             "Ольга Васильева",
			Phone:            "+7 912 345-67-89",
			TotalBookings:    3,
			TotalSpent:       4500,
			Status:           domain.ClientInactive,
			LastBooking:      ptr.Ptr(time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC)),
			RegistrationDate: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// BookingHistory возвращает демонстрационную историю бронирований клиентов
func BookingHistory() []*domain.BookingHistoryEntry {
	return []*domain.BookingHistoryEntry{
		{
			ID:        1,
			ClientID:  1,
			Date:      time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			CourtName: "Корт 1 (Хард)",
			Duration:  90,
			Price:     2250,
			Kind:      "training",
		},
		{
			ID:        2,
			ClientID:  1,
			Date:      time.Date(2024, time.December, 28, 0, 0, 0, 0, time.UTC),
			CourtName: "Корт 3 (Грунт)",
			Duration:  60,
			Price:     720,
			Kind:      "court",
		},
		{
			ID:        3,
			ClientID:  2,
			Date:      time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC),
			CourtName: "Корт 2 (Хард)",
			Duration:  60,
			Price:     480,
			Kind:      "court",
		},
		{
			ID:        4,
			ClientID:  3,
			Date:      time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
			CourtName: "Корт 1 (Хард)",
			Duration:  120,
			Price:     3600,
			Kind:      "training",
		},
	}
}

// Coaches возвращает демонстрационный справочник тренеров
func Coaches() []*domain.Coach {
	return []*domain.Coach{
		{
			ID:              1,
			Name:            "Анна Петрова",
			Phone:           "+7 916 123-45-67",
			Email:           "anna.petrova@tennispark.ru",
			Specializations: []string{"Начинающие", "Дети"},
			ExperienceYears: 8,
			HourlyRate:      2500,
			Rating:          4.8,
			IsActive:        true,
			Color:           "#8B5CF6",
			CreatedAt:       time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:              2,
			Name:            "Дмитрий Козлов",
			Phone:           "+7 903 987-65-43",
			Email:           "dmitry.kozlov@tennispark.ru",
			Specializations: []string{"Профессионалы", "Турниры"},
			ExperienceYears: 12,
			HourlyRate:      3000,
			Rating:          4.9,
			IsActive:        true,
			Color:           "#10B981",
			CreatedAt:       time.Date(2022, time.August, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:              3,
			Name:            "Елена Сидорова",
			Phone:           "+7 925 456-78-90",
			Email:           "elena.sidorova@tennispark.ru",
			Specializations: []string{"Женский теннис", "Фитнес"},
			ExperienceYears: 6,
			HourlyRate:      2200,
			Rating:          4.6,
			IsActive:        true,
			Color:           "#F59E0B",
			CreatedAt:       time.Date(2023, time.May, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:              4,
			Name:            "Михаил Иванов",
			Phone:           "+7 917 234-56-78",
			Email:           "mikhail.ivanov@tennispark.ru",
			Specializations: []string{"Юниоры", "Групповые занятия"},
			ExperienceYears: 10,
			HourlyRate:      2800,
			Rating:          4.7,
			IsActive:        false,
			Color:           "#EF4444",
			CreatedAt:       time.Date(2022, time.March, 12, 0, 0, 0, 0, time.UTC),
		},
	}
}
