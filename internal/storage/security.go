package storage

import (
	"errors"

	"hostelhub/backend/internal/models"

	"gorm.io/gorm"
)

func (s *Service) SaveAlert(alert *models.SecurityAlert) error {
	return s.DB.Save(alert).Error
}

func (s *Service) GetAlertByID(id string) (*models.SecurityAlert, error) {
	var alert models.SecurityAlert
	err := s.DB.First(&alert, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

func (s *Service) ListAlerts(filter AlertFilter) ([]models.SecurityAlert, error) {
	q := s.DB.Model(&models.SecurityAlert{})
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var alerts []models.SecurityAlert
	if err := q.Order("created_at desc").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (s *Service) SaveAttendance(record *models.AttendanceRecord) error {
	return s.DB.Save(record).Error
}

func (s *Service) ListAttendanceByDate(date string) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	if err := s.DB.Where("date = ?", date).Order("student_name asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Service) ListAttendanceForStudent(studentID string) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	if err := s.DB.Where("student_id = ?", studentID).Order("date desc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
