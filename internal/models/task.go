package models

import "time"

type Task struct {
	ID           string    `json:"id" gorm:"primaryKey;size:50"`
	Type         string    `json:"type" gorm:"size:100;not null;check:type IN ('Follow-up','Delivery','Call Back','Meeting')" validate:"required,oneof=Follow-up Delivery 'Call Back' Meeting"`
	LinkedTo     string    `json:"linkedTo" gorm:"size:50;not null;check:linked_to IN ('Lead','Order','Call')" validate:"required,oneof=Lead Order Call"`
	LinkedID     string    `json:"linkedId" gorm:"size:50;not null" validate:"required"`
	CustomerName string    `json:"customerName" gorm:"not null" validate:"required"`
	DueDate      time.Time `json:"dueDate" gorm:"not null;index"`
	Status       string    `json:"status" gorm:"size:50;not null;index;check:status IN ('Pending','Done','Overdue')" validate:"required,oneof=Pending Done Overdue"`
	AssignedTo   string    `json:"assignedTo" gorm:"not null" validate:"required"`
	Remarks      string    `json:"remarks" gorm:"type:text"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

const (
	TaskFollowUp = "Follow-up"
	TaskDelivery = "Delivery"
	TaskCallBack = "Call Back"
	TaskMeeting  = "Meeting"

	LinkedLead  = "Lead"
	LinkedOrder = "Order"
	LinkedCall  = "Call"

	TaskPending = "Pending"
	TaskDone    = "Done"
	TaskOverdue = "Overdue"
)
